// Package app holds application-level configuration.
package app

import "github.com/renanferminojc/clean-go-api/pkg/notification"

// AppConfig contains application configuration, read from the environment.
// DATABASE_URL is optional; without it the in-memory account repository is
// used. EMAIL_HOST is optional; without it no welcome emails are sent.
type AppConfig struct {
	Host        string `env:"APP_HOST" env-default:"localhost"`
	Port        uint16 `env:"APP_PORT" env-default:"8080"`
	DatabaseURL string `env:"DATABASE_URL" env-default:""`

	EmailHost     string `env:"EMAIL_HOST" env-default:""`
	EmailPort     uint16 `env:"EMAIL_PORT" env-default:"1025"`
	EmailUsername string `env:"EMAIL_USERNAME" env-default:""`
	EmailPassword string `env:"EMAIL_PASSWORD" env-default:""`
	EmailFrom     string `env:"EMAIL_FROM" env-default:"noreply@example.com"`
	EmailTLS      bool   `env:"EMAIL_TLS" env-default:"false"`
}

// EmailConfigured returns true when an SMTP host is set.
func (c AppConfig) EmailConfigured() bool {
	return c.EmailHost != ""
}

// ToSMTPConfig converts the email settings to a notification.SMTPConfig.
func (c AppConfig) ToSMTPConfig() notification.SMTPConfig {
	return notification.SMTPConfig{
		Host:     c.EmailHost,
		Port:     int(c.EmailPort),
		Username: c.EmailUsername,
		Password: c.EmailPassword,
		From:     c.EmailFrom,
		TLS:      c.EmailTLS,
	}
}
