// Package web is the user-facing surface: an HTML form for pasting
// change bullets plus a small JSON API.
package web

import (
	"context"

	"github.com/gin-gonic/gin"
)

// NotesService runs the generation pipeline.
// Implementations: core.Engine
type NotesService interface {
	GenerateNotes(ctx context.Context, bullets string) (string, error)
}

// Server is the PatchSmith web server.
type Server struct {
	notes  NotesService
	router *gin.Engine
}

// NewServer creates a new web server.
func NewServer(notes NotesService) *Server {
	router := gin.Default()

	s := &Server{
		notes:  notes,
		router: router,
	}

	// Load templates
	router.LoadHTMLGlob("web/templates/*")

	// Web routes
	router.GET("/", s.handleIndex)
	router.POST("/", s.handleGenerate)

	// API routes
	api := router.Group("/api")
	{
		api.POST("/notes", s.handleAPIGenerate)
	}

	return s
}

// Run starts the web server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
