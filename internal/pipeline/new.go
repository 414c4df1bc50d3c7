package pipeline

import (
	"github.com/tuanpmle/studyflow/internal/acquire"
	"github.com/tuanpmle/studyflow/internal/config"
	"github.com/tuanpmle/studyflow/internal/exporter"
	"github.com/tuanpmle/studyflow/internal/generator"
	"github.com/tuanpmle/studyflow/internal/logger"
	"github.com/tuanpmle/studyflow/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	acquirer    acquire.Acquirer
	transcriber transcriber.Transcriber
	generator   generator.Generator
	exporter    exporter.Exporter
	store       DocumentStore
	logger      logger.Logger
	semaphore   *semaphore
}

// New creates a Pipeline instance with bounded concurrency across
// invocations.
func New(
	cfg *config.Config,
	acq acquire.Acquirer,
	tr transcriber.Transcriber,
	gen generator.Generator,
	exp exporter.Exporter,
	st DocumentStore,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		acquirer:    acq,
		transcriber: tr,
		generator:   gen,
		exporter:    exp,
		store:       st,
		logger:      log,
		semaphore:   newSemaphore(cfg.Performance.MaxConcurrent),
	}
}
