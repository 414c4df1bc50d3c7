package server

import (
	"context"

	"github.com/tuanpmle/studyflow/internal/store"
)

// DocumentReader lists and fetches persisted document records.
type DocumentReader interface {
	ListDocuments(ctx context.Context) ([]store.Document, error)
	GetDocument(ctx context.Context, id string) (store.Document, error)
}

// Availability reports whether the generation backend is reachable.
type Availability interface {
	IsAvailable(ctx context.Context) bool
}
