package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Mail transports understood by the relay factory.
const (
	MailTransportSMTP = "smtp"
	MailTransportLog  = "log"
)

// Password comparison modes.
const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv            string
	Port              string
	DatabaseURL       string
	HTTPReadTimeout   time.Duration
	HTTPWriteTimeout  time.Duration
	HTTPIdleTimeout   time.Duration
	CORSAllowedOrigin []string
	FormRateLimit     int
	Mail              MailConfig
	NotifyConcurrency int
	UploadMaxBytes    int64
	ContactUploadDir  string
	PasswordMode      string
}

// MailConfig holds the relay settings. Credentials only ever come from the environment.
type MailConfig struct {
	Transport    string
	SMTPHost     string
	SMTPPort     int
	Username     string
	Password     string
	From         string
	AdminAddress string
	SendTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	appEnv := getEnv("APP_ENV", "development")
	defaultTransport := MailTransportSMTP
	if appEnv == "development" {
		defaultTransport = MailTransportLog
	}

	cfg := &Config{
		AppEnv:            appEnv,
		Port:              getEnv("PORT", "3002"),
		DatabaseURL:       getEnv("DATABASE_URL", "sqlite://data/app.db"),
		HTTPReadTimeout:   time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:  time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 60)),
		HTTPIdleTimeout:   time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		CORSAllowedOrigin: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		FormRateLimit:     getEnvInt("FORM_RATE_LIMIT_PER_MINUTE", 30),
		Mail: MailConfig{
			Transport:    strings.ToLower(getEnv("MAIL_TRANSPORT", defaultTransport)),
			SMTPHost:     getEnv("MAIL_SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:     getEnvInt("MAIL_SMTP_PORT", 587),
			Username:     os.Getenv("MAIL_USERNAME"),
			Password:     os.Getenv("MAIL_PASSWORD"),
			From:         os.Getenv("MAIL_FROM"),
			AdminAddress: os.Getenv("MAIL_ADMIN_ADDRESS"),
			SendTimeout:  time.Second * time.Duration(getEnvInt("MAIL_SEND_TIMEOUT_SECONDS", 30)),
		},
		NotifyConcurrency: getEnvInt("NOTIFY_CONCURRENCY", 1),
		UploadMaxBytes:    int64(getEnvInt("UPLOAD_MAX_BYTES", 10<<20)),
		ContactUploadDir:  strings.TrimSpace(os.Getenv("CONTACT_UPLOAD_DIR")),
		PasswordMode:      strings.ToLower(getEnv("PASSWORD_MODE", PasswordModePlain)),
	}

	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}
	if cfg.Mail.AdminAddress == "" {
		cfg.Mail.AdminAddress = cfg.Mail.From
	}
	if cfg.NotifyConcurrency < 1 {
		cfg.NotifyConcurrency = 1
	}

	switch cfg.Mail.Transport {
	case MailTransportSMTP:
		if cfg.Mail.Username == "" || cfg.Mail.Password == "" {
			return nil, fmt.Errorf("MAIL_USERNAME and MAIL_PASSWORD are required for the smtp transport")
		}
		if cfg.Mail.AdminAddress == "" {
			return nil, fmt.Errorf("MAIL_ADMIN_ADDRESS is required for the smtp transport")
		}
	case MailTransportLog:
	default:
		return nil, fmt.Errorf("unsupported MAIL_TRANSPORT %q", cfg.Mail.Transport)
	}

	switch cfg.PasswordMode {
	case PasswordModePlain, PasswordModeBcrypt:
	default:
		return nil, fmt.Errorf("unsupported PASSWORD_MODE %q", cfg.PasswordMode)
	}

	if cfg.UploadMaxBytes <= 0 {
		return nil, fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
