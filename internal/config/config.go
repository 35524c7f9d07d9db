package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey   = "API_PORT"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"
	uploadDirEnvKey = "UPLOAD_DIR"

	s3EndpointEnvKey  = "S3_ENDPOINT"
	s3AccessKeyEnvKey = "S3_ACCESS_KEY"
	s3SecretKeyEnvKey = "S3_SECRET_KEY"
	s3BucketEnvKey    = "S3_BUCKET"

	defaultPort      = "8080"
	defaultUploadDir = "uploads"
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	UploadDir       string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
}

// NewApp builds the process configuration from the environment. The JWT
// secret and database URL have no defaults and fail closed when unset.
func NewApp() (App, error) {
	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok || jwtSecret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		port = defaultPort
	}

	uploadDir, ok := os.LookupEnv(uploadDirEnvKey)
	if !ok {
		uploadDir = defaultUploadDir
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		UploadDir:       uploadDir,
		S3Endpoint:      os.Getenv(s3EndpointEnvKey),
		S3AccessKey:     os.Getenv(s3AccessKeyEnvKey),
		S3SecretKey:     os.Getenv(s3SecretKeyEnvKey),
		S3Bucket:        os.Getenv(s3BucketEnvKey),
	}, nil
}

// S3Enabled reports whether the object-storage asset backend is configured.
func (a App) S3Enabled() bool {
	return a.S3Endpoint != "" && a.S3AccessKey != "" && a.S3SecretKey != "" && a.S3Bucket != ""
}
