package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					ModelDir:   "models",
					BinaryPath: "./whisper-cli",
				},
				Paths: PathsConfig{
					Uploads: "uploads",
					PDFs:    "pdfs",
				},
			},
			wantErr: false,
		},
		{
			name: "missing binary path",
			config: Config{
				Whisper: WhisperConfig{
					ModelDir: "models",
				},
				Paths: PathsConfig{
					Uploads: "uploads",
					PDFs:    "pdfs",
				},
			},
			wantErr: true,
		},
		{
			name: "missing model dir",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
				},
				Paths: PathsConfig{
					Uploads: "uploads",
					PDFs:    "pdfs",
				},
			},
			wantErr: true,
		},
		{
			name: "missing paths",
			config: Config{
				Whisper: WhisperConfig{
					ModelDir:   "models",
					BinaryPath: "./whisper-cli",
				},
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			ModelDir:   "models",
			BinaryPath: "./whisper-cli",
		},
		Paths: PathsConfig{
			Uploads: "uploads",
			PDFs:    "pdfs",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.ModelSize != "base" {
		t.Errorf("ModelSize = %v, want base", cfg.Whisper.ModelSize)
	}
	if cfg.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("BaseURL = %v, want http://localhost:11434", cfg.Ollama.BaseURL)
	}
	if cfg.Ollama.TimeoutSeconds != 300 {
		t.Errorf("TimeoutSeconds = %v, want 300", cfg.Ollama.TimeoutSeconds)
	}
	if cfg.Chunking.MaxChunkChars != 2000 {
		t.Errorf("MaxChunkChars = %v, want 2000", cfg.Chunking.MaxChunkChars)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  model_dir: "models"
  binary_path: "./whisper-cli"
  language: "en"
  model_size: "small"

ollama:
  base_url: "http://localhost:11434"
  model: "mistral"
  max_tokens: 800

paths:
  uploads: "uploads"
  pdfs: "pdfs"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelSize != "small" {
		t.Errorf("ModelSize = %v, want %v", cfg.Whisper.ModelSize, "small")
	}

	if cfg.Ollama.MaxTokens != 800 {
		t.Errorf("MaxTokens = %v, want %v", cfg.Ollama.MaxTokens, 800)
	}

	if cfg.Paths.Uploads != "uploads" {
		t.Errorf("Uploads = %v, want %v", cfg.Paths.Uploads, "uploads")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
