// Package config provides runtime configuration for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds wiring knobs for the servers, backends and workers.
type Config struct {
	HTTPAddr string
	GRPCAddr string

	MySQLDSN  string
	RedisAddr string // empty disables the record cache and write claims

	BlobDir     string
	BlobBaseURL string

	// RegistryLocator identifies this registry deployment inside
	// encoded verification payloads.
	RegistryLocator string

	MaxUploadBytes  int64
	WorkerCount     int
	QueueSize       int
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		GRPCAddr:        getenv("GRPC_ADDR", ":50051"),
		MySQLDSN:        getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/scanchain?parseTime=true"),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		BlobDir:         getenv("BLOB_DIR", "./data/blobs"),
		BlobBaseURL:     getenv("BLOB_BASE_URL", "http://localhost:8080/blobs"),
		RegistryLocator: getenv("REGISTRY_LOCATOR", "registry.local/main"),
		MaxUploadBytes:  int64(atoienv("MAX_UPLOAD_BYTES", 10<<20)),
		WorkerCount:     atoienv("WORKER_COUNT", 4),
		QueueSize:       atoienv("QUEUE_SIZE", 1024),
		ShutdownTimeout: time.Duration(atoienv("SHUTDOWN_TIMEOUT_SEC", 5)) * time.Second,
	}
}
