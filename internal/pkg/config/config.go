package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultLogLevel            = "info"
	defaultOrderAPITimeout     = 10 * time.Second
	defaultConsumerGroupPrefix = "order-console"
)

type (
	Tasks struct {
		OrdersResyncInterval time.Duration // 0 - задача отключена
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill
		RateLimiterBurst int           // middleware rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	Log struct {
		Level string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	OrderAPI struct {
		BaseURL string
		Timeout time.Duration
	}

	Auth struct {
		AccessToken string
		ExpiresAt   time.Time // нулевое значение - без срока действия
	}

	Kafka struct {
		Brokers             string
		OrderEventsTopic    string
		ConsumerGroupPrefix string
		Sarama              Sarama
		Handlers            KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderChanged OrderChanged
	}

	OrderChanged struct {
		ProcessTimeout time.Duration
	}

	Notifications struct {
		Enabled bool
		Topic   string
	}

	Config struct {
		Tasks         Tasks
		Server        HTTPServer
		Log           Log
		Database      Database
		OrderAPI      OrderAPI
		Auth          Auth
		Kafka         Kafka
		Notifications Notifications
	}
)

// BrokerList разбирает KAFKA_BROKERS, разделённые запятыми.
func (k Kafka) BrokerList() []string {
	parts := strings.Split(k.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase читает только POSTGRES_* (для cmd/migrate и интеграционных тестов).
func LoadDatabase() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func loadFromEnv() (*Config, error) {
	resyncInterval, err := osGetEnvDuration("BACKGROUND_ORDERS_RESYNC_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderAPITimeout, err := osGetEnvDuration("ORDER_API_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if orderAPITimeout == 0 {
		orderAPITimeout = defaultOrderAPITimeout
	}

	tokenExpiresAt, err := osGetTime("AUTH_TOKEN_EXPIRES_AT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	notificationsEnabled, err := osGetBool("NOTIFICATIONS_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OrdersResyncInterval: resyncInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Log: Log{
			Level: osGetEnvDefault("LOG_LEVEL", defaultLogLevel),
		},
		Database: LoadDatabase(),
		OrderAPI: OrderAPI{
			BaseURL: os.Getenv("ORDER_API_BASE_URL"),
			Timeout: orderAPITimeout,
		},
		Auth: Auth{
			AccessToken: os.Getenv("AUTH_ACCESS_TOKEN"),
			ExpiresAt:   tokenExpiresAt,
		},
		Kafka: Kafka{
			Brokers:             os.Getenv("KAFKA_BROKERS"),
			OrderEventsTopic:    os.Getenv("KAFKA_ORDER_EVENTS_TOPIC"),
			ConsumerGroupPrefix: osGetEnvDefault("KAFKA_CONSUMER_GROUP_PREFIX", defaultConsumerGroupPrefix),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderChanged: OrderChanged{
					ProcessTimeout: orderChangedTimeout,
				},
			},
		},
		Notifications: Notifications{
			Enabled: notificationsEnabled,
			Topic:   os.Getenv("KAFKA_NOTIFICATIONS_TOPIC"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.OrdersResyncInterval < 0 {
		return errors.New("BACKGROUND_ORDERS_RESYNC_INTERVAL must not be negative")
	}

	if cfg.OrderAPI.BaseURL == "" {
		return errors.New("ORDER_API_BASE_URL is required")
	}
	if !strings.HasPrefix(cfg.OrderAPI.BaseURL, "http://") && !strings.HasPrefix(cfg.OrderAPI.BaseURL, "https://") {
		return fmt.Errorf("ORDER_API_BASE_URL must be an http(s) URL, got %q", cfg.OrderAPI.BaseURL)
	}
	if cfg.OrderAPI.Timeout < 0 {
		return errors.New("ORDER_API_TIMEOUT must not be negative")
	}

	if len(cfg.Kafka.BrokerList()) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.OrderEventsTopic == "" {
		return errors.New("KAFKA_ORDER_EVENTS_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_CHANGED_PROCESS_TIMEOUT is required")
	}

	if cfg.Notifications.Enabled && cfg.Notifications.Topic == "" {
		return errors.New("KAFKA_NOTIFICATIONS_TOPIC is required when NOTIFICATIONS_ENABLED=true")
	}

	return nil
}

func osGetEnvDefault(s, def string) string {
	val := os.Getenv(s)
	if val == "" {
		return def
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetTime(s string) (time.Time, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Time{}, nil
	}

	res, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid RFC3339 time for %s=%q: %w", s, val, err)
	}
	return res, nil
}
