package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mealmind/backend/internal/service"
)

// Messages returned for server-side faults. Generation and decode failures
// carry distinct texts so operators can tell "service unreachable" apart from
// "service returned garbage" from client reports alone.
const (
	msgGenerationFailed = "Failed to generate a response. Please try again."
	msgUnreadableOutput = "The AI returned a response in an unreadable format. Please try again."
)

// respondError converts a service fault into the JSON error envelope. The raw
// model output attached to a decode fault is logged server-side and never
// sent to the client.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	var de *service.DecodeError
	if errors.As(err, &de) {
		log.Printf("unreadable model output: %v; raw: %q", de.Err, de.Raw)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgUnreadableOutput})
		return
	}

	var ge *service.GenerationError
	if errors.As(err, &ge) {
		log.Printf("generation call failed: %v", ge.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgGenerationFailed})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	log.Printf("request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
