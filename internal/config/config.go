package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	Port           uint16   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	DispatchExchange string `env:"DISPATCH_EXCHANGE" envDefault:""`
	DispatchQueue    string `env:"DISPATCH_QUEUE" envDefault:"recordatorios.despacho"`

	// Cron expressions for the scheduler binary. Defaults follow the back
	// office's original cadence: pending check hourly, generation daily at
	// 08:00, overdue sweep every six hours.
	PendingCheckSpec    string `env:"PENDING_CHECK_SPEC" envDefault:"0 * * * *"`
	DailyGenerationSpec string `env:"DAILY_GENERATION_SPEC" envDefault:"0 8 * * *"`
	OverdueSweepSpec    string `env:"OVERDUE_SWEEP_SPEC" envDefault:"0 */6 * * *"`

	StatsCacheTTLSeconds int `env:"STATS_CACHE_TTL_SECONDS" envDefault:"60"`

	AwsRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY" envDefault:""`
	AwsSecretKey string `env:"AWS_SECRET_KEY" envDefault:""`

	EmailFrom string `env:"EMAIL_FROM" envDefault:"notificaciones@dentalab.example"`
	EmailTo   string `env:"EMAIL_TO" envDefault:""`

	WhatsappAPIURL    string `env:"WHATSAPP_API_URL" envDefault:""`
	WhatsappToken     string `env:"WHATSAPP_TOKEN" envDefault:""`
	WhatsappRecipient string `env:"WHATSAPP_RECIPIENT" envDefault:""`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return config, nil
}
