package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv   string
	AppName  string
	LogLevel string

	GRPCPort string
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ConsulHost       string
	ConsulPort       string
	ConsulHTTPToken  string
	ConsulDatacenter string
	ConsulTLSEnabled bool

	ApicurioURL   string
	ApicurioGroup string

	KafkaBrokers                   []string
	TopicServiceRegisteredEvents   string
	TopicServiceUnregisteredEvents string
	TopicModuleRegisteredEvents    string
	TopicModuleUnregisteredEvents  string

	HealthCheckTimeout time.Duration
	HealthPollInterval time.Duration
	WatchInterval      time.Duration

	ReconcileInterval time.Duration
	ModuleStaleAfter  time.Duration

	GRPCFlowControlWindow int32
	ChannelIdleTTL        time.Duration
	ChannelCacheCapacity  int

	ServiceVersion string

	SelfRegistrationEnabled bool
	SelfServiceName         string
	SelfDescription         string
	SelfAdvertisedHost      string
	SelfAdvertisedPort      int
	SelfInternalHost        string
	SelfInternalPort        int
	SelfCapabilities        []string
	SelfTags                []string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:                         os.Getenv("APP_ENV"),
		AppName:                        os.Getenv("APP_NAME"),
		LogLevel:                       os.Getenv("LOG_LEVEL"),
		GRPCPort:                       os.Getenv("GRPC_PORT"),
		HTTPPort:                       os.Getenv("HTTP_PORT"),
		DBHost:                         os.Getenv("DB_HOST"),
		DBPort:                         os.Getenv("DB_PORT"),
		DBUser:                         os.Getenv("DB_USER"),
		DBPassword:                     os.Getenv("DB_PASSWORD"),
		DBName:                         os.Getenv("DB_NAME"),
		DBSSLMode:                      os.Getenv("DB_SSL_MODE"),
		ConsulHost:                     os.Getenv("CONSUL_HOST"),
		ConsulPort:                     os.Getenv("CONSUL_PORT"),
		ConsulHTTPToken:                os.Getenv("CONSUL_HTTP_TOKEN"),
		ConsulDatacenter:               os.Getenv("CONSUL_DATACENTER"),
		ApicurioURL:                    os.Getenv("APICURIO_URL"),
		ApicurioGroup:                  os.Getenv("APICURIO_GROUP"),
		TopicServiceRegisteredEvents:   os.Getenv("KAFKA_TOPIC_SERVICE_REGISTERED"),
		TopicServiceUnregisteredEvents: os.Getenv("KAFKA_TOPIC_SERVICE_UNREGISTERED"),
		TopicModuleRegisteredEvents:    os.Getenv("KAFKA_TOPIC_MODULE_REGISTERED"),
		TopicModuleUnregisteredEvents:  os.Getenv("KAFKA_TOPIC_MODULE_UNREGISTERED"),
		ServiceVersion:                 os.Getenv("SERVICE_VERSION"),
		SelfServiceName:                os.Getenv("REGISTRATION_SERVICE_NAME"),
		SelfDescription:                os.Getenv("REGISTRATION_DESCRIPTION"),
		SelfAdvertisedHost:             os.Getenv("REGISTRATION_ADVERTISED_HOST"),
		SelfInternalHost:               os.Getenv("REGISTRATION_INTERNAL_HOST"),
		SelfCapabilities:               envList("REGISTRATION_CAPABILITIES"),
		SelfTags:                       envList("REGISTRATION_TAGS"),
	}

	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.AppName == "" {
		cfg.AppName = "platform-registry"
	}
	if cfg.GRPCPort == "" {
		cfg.GRPCPort = "9090"
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8090"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.ConsulHost == "" {
		cfg.ConsulHost = "localhost"
	}
	if cfg.ConsulPort == "" {
		cfg.ConsulPort = "8500"
	}
	if cfg.ApicurioURL == "" {
		cfg.ApicurioURL = "http://localhost:8081"
	}
	if cfg.ApicurioGroup == "" {
		cfg.ApicurioGroup = "default"
	}
	if cfg.TopicServiceRegisteredEvents == "" {
		cfg.TopicServiceRegisteredEvents = "opensearch-service-registered-events"
	}
	if cfg.TopicServiceUnregisteredEvents == "" {
		cfg.TopicServiceUnregisteredEvents = "opensearch-service-unregistered-events"
	}
	if cfg.TopicModuleRegisteredEvents == "" {
		cfg.TopicModuleRegisteredEvents = "opensearch-module-registered-events"
	}
	if cfg.TopicModuleUnregisteredEvents == "" {
		cfg.TopicModuleUnregisteredEvents = "opensearch-module-unregistered-events"
	}
	if cfg.ServiceVersion == "" {
		cfg.ServiceVersion = "1.0.0"
	}

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	var err error
	cfg.ConsulTLSEnabled, err = envBool("CONSUL_TLS_ENABLED", false)
	if err != nil {
		return nil, err
	}
	cfg.SelfRegistrationEnabled, err = envBool("REGISTRATION_SELF_ENABLED", false)
	if err != nil {
		return nil, err
	}

	healthTimeout, err := envInt("HEALTH_CHECK_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.HealthCheckTimeout = time.Duration(healthTimeout) * time.Second

	pollInterval, err := envInt("HEALTH_POLL_INTERVAL_SECONDS", 1)
	if err != nil {
		return nil, err
	}
	cfg.HealthPollInterval = time.Duration(pollInterval) * time.Second

	watchInterval, err := envInt("WATCH_INTERVAL_SECONDS", 2)
	if err != nil {
		return nil, err
	}
	cfg.WatchInterval = time.Duration(watchInterval) * time.Second

	reconcileInterval, err := envInt("RECONCILE_INTERVAL_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.ReconcileInterval = time.Duration(reconcileInterval) * time.Second

	staleAfter, err := envInt("MODULE_STALE_AFTER_SECONDS", 300)
	if err != nil {
		return nil, err
	}
	cfg.ModuleStaleAfter = time.Duration(staleAfter) * time.Second

	window, err := envInt("GRPC_FLOW_CONTROL_WINDOW", 104857600)
	if err != nil {
		return nil, err
	}
	cfg.GRPCFlowControlWindow = int32(window)

	idleTTL, err := envInt("CHANNEL_IDLE_TTL_MINUTES", 15)
	if err != nil {
		return nil, err
	}
	cfg.ChannelIdleTTL = time.Duration(idleTTL) * time.Minute

	cfg.ChannelCacheCapacity, err = envInt("CHANNEL_CACHE_CAPACITY", 1000)
	if err != nil {
		return nil, err
	}

	cfg.SelfAdvertisedPort, err = envInt("REGISTRATION_ADVERTISED_PORT", 0)
	if err != nil {
		return nil, err
	}
	cfg.SelfInternalPort, err = envInt("REGISTRATION_INTERNAL_PORT", 0)
	if err != nil {
		return nil, err
	}

	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("missing required environment variables: DB_HOST, DB_USER, DB_PASSWORD, DB_NAME")
	}
	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
