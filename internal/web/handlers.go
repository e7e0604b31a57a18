package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KhanNadman/llm-patchsmith/internal/safety"
)

// userMessage maps a pipeline error to the string shown to the caller.
// Validation errors are shown verbatim; anything else gets a generic
// wrapper so internals do not leak.
func userMessage(err error) string {
	var verr *safety.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return "Something went wrong generating patch notes: " + err.Error()
}

// Web handlers

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "PatchSmith",
	})
}

func (s *Server) handleGenerate(c *gin.Context) {
	bullets := strings.TrimSpace(c.PostForm("bullets"))

	notes, err := s.notes.GenerateNotes(c.Request.Context(), bullets)
	if err != nil {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"title":   "PatchSmith",
			"bullets": bullets,
			"error":   userMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":      "PatchSmith",
		"bullets":    bullets,
		"patchNotes": notes,
	})
}

// API handlers

type notesRequest struct {
	Bullets string `json:"bullets"`
}

func (s *Server) handleAPIGenerate(c *gin.Context) {
	var req notesRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	bullets := strings.TrimSpace(req.Bullets)

	notes, err := s.notes.GenerateNotes(c.Request.Context(), bullets)
	if err != nil {
		status := http.StatusInternalServerError
		var verr *safety.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   userMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"notes":   notes,
	})
}
