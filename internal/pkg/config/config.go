package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // POLICY_TIMEZONE должен грузиться и в distroless образе
)

const (
	defaultDinnerAPITimeout   = 5 * time.Second
	defaultVoiceSessionTTL    = 30 * time.Minute
	defaultPolicyTimezone     = "Asia/Seoul"
	defaultRabbitMQExchange   = "dinner.order.cancelled"
	defaultCleanupIntervalTTL = time.Minute
)

type (
	Tasks struct {
		ReservationCleanupInterval  time.Duration
		VoiceSessionCleanupInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Log struct {
		Level string
	}

	Database struct {
		Host              string
		Port              string
		User              string
		Password          string
		DBName            string
		SSLMode           string
		MigrationsEnabled bool
	}

	DinnerAPI struct {
		BaseURL string
		Timeout time.Duration
	}

	// Policy нулевые значения означают дефолты движка правил
	Policy struct {
		Location         *time.Location
		ChangeCutoff     time.Duration
		SameDayChangeFee int64
		CancelFee        int64
		FreeCancelDays   int
	}

	Voice struct {
		SessionTTL time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	// RabbitMQ пустой URL отключает публикацию уведомлений
	RabbitMQ struct {
		URL      string
		Exchange string
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Log       Log
		Database  Database
		DinnerAPI DinnerAPI
		Policy    Policy
		Voice     Voice
		Kafka     Kafka
		RabbitMQ  RabbitMQ
	}
)

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

func loadFromEnv() (*Config, error) {
	reservationCleanup, err := osGetEnvDuration("BACKGROUND_RESERVATION_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	voiceCleanup, err := osGetEnvDuration("BACKGROUND_VOICE_SESSION_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
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

	migrationsEnabled, err := osGetBool("POSTGRES_MIGRATIONS_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dinnerAPITimeout, err := osGetEnvDuration("DINNER_API_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	policy, err := loadPolicy()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	voiceSessionTTL, err := osGetEnvDuration("VOICE_SESSION_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := &Config{
		Tasks: Tasks{
			ReservationCleanupInterval:  reservationCleanup,
			VoiceSessionCleanupInterval: voiceCleanup,
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
			Level: os.Getenv("LOG_LEVEL"),
		},
		Database: Database{
			Host:              os.Getenv("POSTGRES_HOST"),
			Port:              os.Getenv("POSTGRES_PORT"),
			User:              os.Getenv("POSTGRES_USER"),
			Password:          os.Getenv("POSTGRES_PASSWORD"),
			DBName:            os.Getenv("POSTGRES_DB"),
			SSLMode:           os.Getenv("POSTGRES_SSLMODE"),
			MigrationsEnabled: migrationsEnabled,
		},
		DinnerAPI: DinnerAPI{
			BaseURL: os.Getenv("DINNER_API_BASE_URL"),
			Timeout: dinnerAPITimeout,
		},
		Policy: policy,
		Voice: Voice{
			SessionTTL: voiceSessionTTL,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
		RabbitMQ: RabbitMQ{
			URL:      os.Getenv("RABBITMQ_URL"),
			Exchange: os.Getenv("RABBITMQ_EXCHANGE"),
		},
	}

	applyDefaults(cfg)
	return cfg, nil
}

func loadPolicy() (Policy, error) {
	timezone := os.Getenv("POLICY_TIMEZONE")
	if timezone == "" {
		timezone = defaultPolicyTimezone
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid timezone for POLICY_TIMEZONE=%q: %w", timezone, err)
	}

	cutoff, err := osGetEnvDuration("POLICY_CHANGE_CUTOFF")
	if err != nil {
		return Policy{}, err
	}

	sameDayFee, err := osGetInt64("POLICY_SAME_DAY_CHANGE_FEE")
	if err != nil {
		return Policy{}, err
	}

	cancelFee, err := osGetInt64("POLICY_CANCEL_FEE")
	if err != nil {
		return Policy{}, err
	}

	freeCancelDays, err := osGetInt("POLICY_FREE_CANCEL_DAYS")
	if err != nil {
		return Policy{}, err
	}

	return Policy{
		Location:         location,
		ChangeCutoff:     cutoff,
		SameDayChangeFee: sameDayFee,
		CancelFee:        cancelFee,
		FreeCancelDays:   freeCancelDays,
	}, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DinnerAPI.Timeout == 0 {
		cfg.DinnerAPI.Timeout = defaultDinnerAPITimeout
	}
	if cfg.Voice.SessionTTL == 0 {
		cfg.Voice.SessionTTL = defaultVoiceSessionTTL
	}
	if cfg.Tasks.ReservationCleanupInterval == 0 {
		cfg.Tasks.ReservationCleanupInterval = defaultCleanupIntervalTTL
	}
	if cfg.Tasks.VoiceSessionCleanupInterval == 0 {
		cfg.Tasks.VoiceSessionCleanupInterval = defaultCleanupIntervalTTL
	}
	if cfg.RabbitMQ.Exchange == "" {
		cfg.RabbitMQ.Exchange = defaultRabbitMQExchange
	}
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

	if cfg.DinnerAPI.BaseURL == "" {
		return errors.New("DINNER_API_BASE_URL is required")
	}

	if cfg.Policy.SameDayChangeFee < 0 {
		return errors.New("POLICY_SAME_DAY_CHANGE_FEE must not be negative")
	}
	if cfg.Policy.CancelFee < 0 {
		return errors.New("POLICY_CANCEL_FEE must not be negative")
	}
	if cfg.Policy.FreeCancelDays < 0 {
		return errors.New("POLICY_FREE_CANCEL_DAYS must not be negative")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
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

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int64 format for %s=%q: %w", s, val, err)
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
