package server

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tuanpmle/studyflow/internal/acquire"
	"github.com/tuanpmle/studyflow/internal/exporter"
	"github.com/tuanpmle/studyflow/internal/generator"
	"github.com/tuanpmle/studyflow/internal/pipeline"
	"github.com/tuanpmle/studyflow/internal/store"
	"github.com/tuanpmle/studyflow/internal/transcriber"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"ollama": s.generator.IsAvailable(c.Request.Context()),
	})
}

func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	artifact, err := s.acquirer.SaveUpload(c.Request.Context(), file.Filename, src)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, artifact)
}

type urlRequest struct {
	URL string `json:"url" binding:"required"`
}

func (s *Server) handleURL(c *gin.Context) {
	var req urlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing url field"})
		return
	}

	artifact, err := s.acquirer.FetchURL(c.Request.Context(), req.URL)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, artifact)
}

type recordRequest struct {
	DurationSeconds int `json:"duration_seconds" binding:"required"`
}

func (s *Server) handleRecord(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DurationSeconds <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration_seconds must be a positive integer"})
		return
	}

	artifact, err := s.acquirer.Record(c.Request.Context(), time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, artifact)
}

type processRequest struct {
	Path      string `json:"path" binding:"required"`
	Source    string `json:"source"`
	Hash      string `json:"hash"`
	Kind      string `json:"kind"`
	Format    string `json:"format"`
	ModelSize string `json:"model_size"`
	Model     string `json:"model"`
}

func (s *Server) handleProcess(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing path field"})
		return
	}

	kind := generator.KindNotes
	if req.Kind != "" {
		var err error
		if kind, err = generator.ParseKind(req.Kind); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	format, err := exporter.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := os.Stat(req.Path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "audio file not found"})
		return
	}

	artifact := &acquire.Artifact{Path: req.Path, Source: req.Source, Hash: req.Hash}
	doc, err := s.pipeline.Process(c.Request.Context(), artifact, pipeline.Options{
		Kind:      kind,
		Format:    format,
		ModelSize: req.ModelSize,
		Model:     req.Model,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (s *Server) handleListDocuments(c *gin.Context) {
	docs, err := s.documents.ListDocuments(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	if docs == nil {
		docs = []store.Document{}
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (s *Server) handleDocumentFile(c *gin.Context) {
	doc, err := s.documents.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		s.writeError(c, err)
		return
	}

	if _, err := os.Stat(doc.OutputPath); err != nil {
		c.JSON(http.StatusGone, gin.H{"error": "exported file no longer on disk"})
		return
	}

	c.FileAttachment(doc.OutputPath, filepath.Base(doc.OutputPath))
}

// writeError maps stage errors to HTTP status codes. Failures surface to the
// caller unchanged; nothing is retried.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var acqErr *acquire.Error
	var trErr *transcriber.Error
	var genErr *generator.Error
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.As(err, &acqErr), errors.As(err, &trErr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &genErr):
		status = http.StatusBadGateway
	}

	s.logger.Error(c.Request.Context(), "Request to %s failed: %v", c.FullPath(), err)
	c.JSON(status, gin.H{"error": err.Error()})
}
