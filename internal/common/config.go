package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration. It is constructed once at
// process start and passed by parameter into each component.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Blob     BlobConfig
	Pipeline PipelineConfig
	LLM      LLMConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// BlobConfig holds object-storage configuration
type BlobConfig struct {
	RootDir string
}

// PipelineConfig holds thresholds for the ingestion pipeline stages.
type PipelineConfig struct {
	// Stage 0 routing
	DirectPageThreshold int // pageCount <= threshold -> direct strategy

	// Stage 1 bounded text extraction
	TextWindowBytes int // window size for streaming extraction
	MaxTextBytes    int // hard ceiling on accumulated text
	MinTextChars    int // below this, terminal InsufficientText

	// Stage 1 segmentation
	MinSectionConfidence float32 // critical section below this flags low confidence

	// Stage 2 chunking
	ChunkTokenBudget    int // per-chunk token ceiling
	SequentialMaxChunks int // at or below this, plan stays sequential
	MaxConcurrentChunks int // fan-out cap for parallel batch groups

	// Validation
	MinRecordConfidence float32 // below this, persisted record is flagged for review
	ReconcileTolerance  float64 // allowed |breakdown-total| drift before flagging
}

// LLMConfig holds extraction-service configuration
type LLMConfig struct {
	BaseURL           string
	APIKey            string
	Model             string
	Temperature       float32
	Timeout           time.Duration
	MaxRetries        int
	RetryBackoff      time.Duration
	RequestsPerMinute int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Blob: BlobConfig{
			RootDir: getEnv("BLOB_ROOT_DIR", "./blobs"),
		},
		Pipeline: PipelineConfig{
			DirectPageThreshold:  getEnvAsInt("PIPELINE_DIRECT_PAGE_THRESHOLD", 8),
			TextWindowBytes:      getEnvAsInt("PIPELINE_TEXT_WINDOW_BYTES", 64<<10),
			MaxTextBytes:         getEnvAsInt("PIPELINE_MAX_TEXT_BYTES", 512<<10),
			MinTextChars:         getEnvAsInt("PIPELINE_MIN_TEXT_CHARS", 50),
			MinSectionConfidence: getEnvAsFloat32("PIPELINE_MIN_SECTION_CONFIDENCE", 0.50),
			ChunkTokenBudget:     getEnvAsInt("PIPELINE_CHUNK_TOKEN_BUDGET", 3000),
			SequentialMaxChunks:  getEnvAsInt("PIPELINE_SEQUENTIAL_MAX_CHUNKS", 3),
			MaxConcurrentChunks:  getEnvAsInt("PIPELINE_MAX_CONCURRENT_CHUNKS", 4),
			MinRecordConfidence:  getEnvAsFloat32("PIPELINE_MIN_RECORD_CONFIDENCE", 0.60),
			ReconcileTolerance:   getEnvAsFloat64("PIPELINE_RECONCILE_TOLERANCE", 0.02),
		},
		LLM: LLMConfig{
			BaseURL:           getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
			APIKey:            getEnv("LLM_API_KEY", ""),
			Model:             getEnv("LLM_MODEL", "gpt-4o-mini"),
			Temperature:       getEnvAsFloat32("LLM_TEMPERATURE", 0.0),
			Timeout:           getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
			MaxRetries:        getEnvAsInt("LLM_MAX_RETRIES", 2),
			RetryBackoff:      getEnvAsDuration("LLM_RETRY_BACKOFF", 2*time.Second),
			RequestsPerMinute: getEnvAsInt("LLM_REQUESTS_PER_MINUTE", 60),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "LLM_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.ChunkTokenBudget <= 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_CHUNK_TOKEN_BUDGET must be positive", ErrInvalidInput)
	}
	if c.Pipeline.MaxTextBytes < c.Pipeline.TextWindowBytes {
		return NewAppError("CONFIG_ERROR", "PIPELINE_MAX_TEXT_BYTES must be >= PIPELINE_TEXT_WINDOW_BYTES", ErrInvalidInput)
	}
	return nil
}
