// Package config loads the external configuration of the client pipeline
// and of the backend emulator from the environment (optionally a .env file).
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServeAddr string

	// DocumentDir is the durable local location generated documents are
	// written to before any sharing or upload happens.
	DocumentDir string

	Backend BackendConfig
	Upload  UploadConfig
}

// BackendConfig holds the logical endpoints of the remote backend. The
// manager and engineer roles authenticate and list work items against
// differently-scoped endpoints.
type BackendConfig struct {
	ManagerLoginURL  string
	EngineerLoginURL string

	ManagerItemsURL  string
	EngineerItemsURL string

	CheckInOutURL     string
	PendingReasonsURL string
}

const (
	UploadBackendUnsigned = "unsigned"
	UploadBackendOSS      = "oss"
)

// UploadConfig is the single configuration surface for the remote upload
// target. The unsigned preset is a revocable secret-lite bundled with the
// client; keeping it here is what allows rotating it, or replacing the
// whole backend with a signed-upload proxy, without touching calling code.
type UploadConfig struct {
	Backend string

	// unsigned multipart upload (default)
	BaseURL      string
	CloudName    string
	UploadPreset string
	Folder       string

	// object-store backend
	OSSEndpoint      string
	OSSAccessKey     string
	OSSSecretKey     string
	OSSBucket        string
	OSSPublicBaseURL string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	base := getEnv("BACKEND_BASE_URL", "https://hma.magnum.org.in")

	cfg := &Config{
		ServeAddr:   getEnv("SERVE_ADDR", ":8080"),
		DocumentDir: getEnv("DOCUMENT_DIR", defaultDocumentDir()),
		Backend: BackendConfig{
			ManagerLoginURL:   getEnv("MANAGER_LOGIN_URL", base+"/appMlogin.php"),
			EngineerLoginURL:  getEnv("ENGINEER_LOGIN_URL", base+"/appMEngglogin.php"),
			ManagerItemsURL:   getEnv("MANAGER_ITEMS_URL", base+"/appMlogin.php"),
			EngineerItemsURL:  getEnv("ENGINEER_ITEMS_URL", base+"/appMEngglogin.php"),
			CheckInOutURL:     getEnv("CHECK_IN_OUT_URL", base+"/appCheckINOUT.php"),
			PendingReasonsURL: getEnv("PENDING_REASONS_URL", base+"/appPendingReason.php"),
		},
		Upload: UploadConfig{
			Backend:      getEnv("UPLOAD_BACKEND", UploadBackendUnsigned),
			BaseURL:      os.Getenv("UPLOAD_BASE_URL"),
			CloudName:    os.Getenv("UPLOAD_CLOUD_NAME"),
			UploadPreset: os.Getenv("UPLOAD_PRESET"),
			Folder:       getEnv("UPLOAD_FOLDER", "complaint-reports"),

			OSSEndpoint:      os.ExpandEnv(os.Getenv("OSS_ENDPOINT")),
			OSSAccessKey:     os.Getenv("OSS_ACCESS_KEY"),
			OSSSecretKey:     os.Getenv("OSS_SECRET_KEY"),
			OSSBucket:        getEnv("OSS_BUCKET", "fieldreport"),
			OSSPublicBaseURL: os.Getenv("OSS_PUBLIC_BASE_URL"),
		},
	}

	if cfg.Upload.Backend == UploadBackendUnsigned && cfg.Upload.BaseURL == "" {
		if cfg.Upload.CloudName != "" {
			cfg.Upload.BaseURL = fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/raw/upload", cfg.Upload.CloudName)
		}
	}

	return cfg, nil
}

func defaultDocumentDir() string {
	cache, err := os.UserCacheDir()
	if err != nil {
		return os.TempDir()
	}
	return cache + string(os.PathSeparator) + "fieldreport"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
