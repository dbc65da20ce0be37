package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	HealthCheck   HealthCheckConfig
	StickySession StickySessionConfig
	RateLimit     RateLimitConfig
	Scaling       ScalingConfig
	Kafka         KafkaConfig
	Mail          MailConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Strategy string `envconfig:"LB_STRATEGY" default:"round_robin"`
}

type HealthCheckConfig struct {
	Enabled          bool              `envconfig:"HEALTH_CHECK_ENABLED" default:"true"`
	Interval         time.Duration     `envconfig:"HEALTH_CHECK_INTERVAL" default:"10s"`
	Timeout          time.Duration     `envconfig:"HEALTH_CHECK_TIMEOUT" default:"5s"`
	MaxFailures      int               `envconfig:"HEALTH_CHECK_MAX_FAILURES" default:"3"`
	Path             string            `envconfig:"HEALTH_CHECK_PATH" default:"/health"`
	ExpectedStatus   []int             `envconfig:"HEALTH_CHECK_EXPECTED_STATUS" default:"200"`
	ExpectedResponse string            `envconfig:"HEALTH_CHECK_EXPECTED_RESPONSE" default:""`
	Headers          map[string]string `envconfig:"HEALTH_CHECK_HEADERS"`
}

type StickySessionConfig struct {
	Enabled    bool          `envconfig:"STICKY_SESSION_ENABLED" default:"false"`
	CookieName string        `envconfig:"STICKY_SESSION_COOKIE_NAME" default:"lb_session"`
	TTL        time.Duration `envconfig:"STICKY_SESSION_TTL" default:"30m"`
}

type RateLimitConfig struct {
	Enabled     bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

type ScalingConfig struct {
	MinInstances       int           `envconfig:"SCALING_MIN_INSTANCES" default:"2"`
	MaxInstances       int           `envconfig:"SCALING_MAX_INSTANCES" default:"10"`
	ScaleUpThreshold   float64       `envconfig:"SCALING_UP_THRESHOLD" default:"0.8"`
	ScaleDownThreshold float64       `envconfig:"SCALING_DOWN_THRESHOLD" default:"0.3"`
	MaxAvgResponseMs   float64       `envconfig:"SCALING_MAX_AVG_RESPONSE_MS" default:"2000"`
	MaxErrorRate       float64       `envconfig:"SCALING_MAX_ERROR_RATE" default:"0.05"`
	CooldownPeriod     time.Duration `envconfig:"SCALING_COOLDOWN_PERIOD" default:"5m"`
	EvaluateSpec       string        `envconfig:"SCALING_EVALUATE_CRON" default:"@every 1m"`
}

type KafkaConfig struct {
	Enabled          bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers          []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	HealthEventTopic string   `envconfig:"KAFKA_HEALTH_EVENT_TOPIC" default:"lb.health.transitions"`
}

type MailConfig struct {
	Enabled          bool   `envconfig:"MAIL_ENABLED" default:"false"`
	Email            string `envconfig:"MAIL_EMAIL"`
	Password         string `envconfig:"MAIL_PASSWORD"`
	Host             string `envconfig:"MAIL_HOST"`
	Port             int    `envconfig:"MAIL_PORT"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
