package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tuanpmle/studyflow/internal/acquire"
	"github.com/tuanpmle/studyflow/internal/config"
	"github.com/tuanpmle/studyflow/internal/logger"
	"github.com/tuanpmle/studyflow/internal/pipeline"
)

// Server exposes the processing pipeline over HTTP.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	cfg        *config.Config
	acquirer   acquire.Acquirer
	pipeline   pipeline.Pipeline
	documents  DocumentReader
	generator  Availability
	logger     logger.Logger
}

// New creates a Server with all routes registered.
func New(
	cfg *config.Config,
	acq acquire.Acquirer,
	p pipeline.Pipeline,
	docs DocumentReader,
	gen Availability,
	log logger.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:     engine,
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      engine,
			ReadTimeout:  30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		cfg:       cfg,
		acquirer:  acq,
		pipeline:  p,
		documents: docs,
		generator: gen,
		logger:    log,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)

	api := s.engine.Group("/api")
	api.POST("/audio/upload", s.handleUpload)
	api.POST("/audio/url", s.handleURL)
	api.POST("/audio/record", s.handleRecord)
	api.POST("/process", s.handleProcess)
	api.GET("/documents", s.handleListDocuments)
	api.GET("/documents/:id/file", s.handleDocumentFile)
}
