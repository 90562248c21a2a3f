package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Defaults for the LLM collaborator. The base URL points at Gemini's
// OpenAI-compatible endpoint.
const (
	DefaultLLMBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultLLMModel   = "gemini-1.5-flash"
)

type Config struct {
	ServerPort int
	Database   DatabaseConfig
	LLM        LLMConfig
	TTS        TTSConfig
	Storage    StorageConfig
	MQ         MQConfig
}

type DatabaseConfig struct {
	URI    string
	DBName string
}

type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type TTSConfig struct {
	APIKey string
	// Strategy selects the synthesis backend: "stream" or "convert".
	Strategy string
}

type StorageConfig struct {
	// Backend selects the audio archive: "minio", "gcs" or "none".
	Backend   string
	PublicURL string
	Minio     MinioConfig
	GCS       GCSConfig
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type GCSConfig struct {
	Bucket          string
	ProjectID       string
	CredentialsFile string
}

type MQConfig struct {
	// Backend selects the event broker: "rabbitmq", "pubsub" or "none".
	Backend  string
	RabbitMQ RabbitMQConfig
	PubSub   PubSubConfig
}

type RabbitMQConfig struct {
	URL             string
	QueueDurable    bool
	QueueAutoDelete bool
	PrefetchCount   int
}

type PubSubConfig struct {
	ProjectID          string
	CredentialsFile    string
	SubscriptionSuffix string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	return Config{
		ServerPort: getEnvInt("SERVER_PORT", 8080),
		Database: DatabaseConfig{
			URI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getEnv("DB_NAME", "songwish"),
		},
		LLM: LLMConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			BaseURL: getEnv("LLM_BASE_URL", DefaultLLMBaseURL),
			Model:   getEnv("LLM_MODEL", DefaultLLMModel),
		},
		TTS: TTSConfig{
			APIKey:   getEnv("ELEVENLABS_API_KEY", ""),
			Strategy: getEnv("TTS_STRATEGY", "stream"),
		},
		Storage: StorageConfig{
			Backend:   getEnv("STORAGE_BACKEND", "none"),
			PublicURL: getEnv("STORAGE_PUBLIC_URL", ""),
			Minio: MinioConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", "songwish-audio"),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
			GCS: GCSConfig{
				Bucket:          getEnv("GCS_BUCKET", ""),
				ProjectID:       getEnv("GCS_PROJECT_ID", ""),
				CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
			},
		},
		MQ: MQConfig{
			Backend: getEnv("MQ_BACKEND", "none"),
			RabbitMQ: RabbitMQConfig{
				URL:             getEnv("RABBITMQ_URL", ""),
				QueueDurable:    getEnvBool("RABBITMQ_QUEUE_DURABLE", true),
				QueueAutoDelete: getEnvBool("RABBITMQ_QUEUE_AUTO_DELETE", false),
				PrefetchCount:   getEnvInt("RABBITMQ_PREFETCH_COUNT", 0),
			},
			PubSub: PubSubConfig{
				ProjectID:          getEnv("PUBSUB_PROJECT_ID", ""),
				CredentialsFile:    getEnv("PUBSUB_CREDENTIALS_FILE", ""),
				SubscriptionSuffix: getEnv("PUBSUB_SUBSCRIPTION_SUFFIX", "-sub"),
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		return valueStr == "1" || valueStr == "true" || valueStr == "TRUE"
	}
	return defaultValue
}
