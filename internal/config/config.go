package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	Ollama      OllamaConfig      `yaml:"ollama"`
	Paths       PathsConfig       `yaml:"paths"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	ModelDir   string `yaml:"model_dir"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	ModelSize  string `yaml:"model_size"`
	Threads    int    `yaml:"threads"`
}

type OllamaConfig struct {
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	Temperature    float64 `yaml:"temperature"`
	MaxTokens      int     `yaml:"max_tokens"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	PullOnStart    bool    `yaml:"pull_on_start"`
}

type PathsConfig struct {
	Inbox      string `yaml:"inbox"`
	Uploads    string `yaml:"uploads"`
	Recordings string `yaml:"recordings"`
	Downloads  string `yaml:"downloads"`
	PDFs       string `yaml:"pdfs"`
	Archived   string `yaml:"archived"`
	Temp       string `yaml:"temp"`
	Data       string `yaml:"data"`
}

type ChunkingConfig struct {
	MaxChunkChars int `yaml:"max_chunk_chars"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelDir == "" {
		return fmt.Errorf("whisper.model_dir is required")
	}
	if c.Paths.Uploads == "" {
		return fmt.Errorf("paths.uploads is required")
	}
	if c.Paths.PDFs == "" {
		return fmt.Errorf("paths.pdfs is required")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.ModelSize == "" {
		c.Whisper.ModelSize = "base"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Ollama.BaseURL == "" {
		c.Ollama.BaseURL = "http://localhost:11434"
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = "mistral"
	}
	if c.Ollama.MaxTokens == 0 {
		c.Ollama.MaxTokens = 1000
	}
	if c.Ollama.TimeoutSeconds == 0 {
		c.Ollama.TimeoutSeconds = 300
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "inbox"
	}
	if c.Paths.Recordings == "" {
		c.Paths.Recordings = "recordings"
	}
	if c.Paths.Downloads == "" {
		c.Paths.Downloads = "downloads"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.Data == "" {
		c.Paths.Data = "data"
	}
	if c.Chunking.MaxChunkChars == 0 {
		c.Chunking.MaxChunkChars = 2000
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
