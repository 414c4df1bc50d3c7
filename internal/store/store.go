// Package store keeps an append-only SQLite index of generated documents so
// previously produced files can be listed and re-downloaded. The pipeline
// never consults it to skip work.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type Document struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	Title           string    `json:"title"`
	Source          string    `json:"source"`
	ArtifactHash    string    `json:"artifact_hash"`
	TranscriptChars int       `json:"transcript_chars"`
	OutputPath      string    `json:"output_path"`
	Format          string    `json:"format"`
	CreatedAt       time.Time `json:"created_at"`
}

type Store struct {
	db *sql.DB
}

const schema = `
create table if not exists documents (
	id text primary key,
	kind text not null,
	title text not null,
	source text not null,
	artifact_hash text not null,
	transcript_chars integer not null,
	output_path text not null,
	format text not null,
	created_at timestamp not null
)`

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) InsertDocument(ctx context.Context, d Document) error {
	_, err := s.db.ExecContext(
		ctx,
		`insert into documents
			(id, kind, title, source, artifact_hash, transcript_chars, output_path, format, created_at)
		 values ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, d.Kind, d.Title, d.Source, d.ArtifactHash,
		d.TranscriptChars, d.OutputPath, d.Format, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("persisting document into sqlite: %w", err)
	}
	return nil
}

func (s *Store) GetDocument(ctx context.Context, id string) (Document, error) {
	res := Document{}

	err := s.db.
		QueryRowContext(
			ctx,
			`select id, kind, title, source, artifact_hash, transcript_chars, output_path, format, created_at
			 from documents where id = $1`,
			id,
		).
		Scan(&res.ID, &res.Kind, &res.Title, &res.Source, &res.ArtifactHash,
			&res.TranscriptChars, &res.OutputPath, &res.Format, &res.CreatedAt)
	if err != nil {
		return res, fmt.Errorf("get document by id: %w", err)
	}

	return res, nil
}

func (s *Store) ListDocuments(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`select id, kind, title, source, artifact_hash, transcript_chars, output_path, format, created_at
		 from documents order by created_at desc`,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Kind, &d.Title, &d.Source, &d.ArtifactHash,
			&d.TranscriptChars, &d.OutputPath, &d.Format, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return docs, nil
}
