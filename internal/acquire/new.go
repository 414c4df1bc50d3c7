package acquire

import (
	"github.com/tuanpmle/studyflow/internal/config"
	"github.com/tuanpmle/studyflow/internal/logger"
	"github.com/tuanpmle/studyflow/pkg/executor"
)

type implAcquirer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Acquirer instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Acquirer {
	return &implAcquirer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
