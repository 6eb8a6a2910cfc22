package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "256KB"
	defaultDispatchTimeout    = 5 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs webhook deduplication and per-user ledger serialization
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for forwarding normalized geofence events to the worker
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Auth guards the operator query API
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Throttle holds the rate-limit policy consulted before every send
	Throttle *ThrottleConfig `json:"throttle" yaml:"throttle" validate:"required"`

	// Matching controls how user interests gate offers
	Matching *MatchingConfig `json:"matching" yaml:"matching" validate:"required"`

	// Geofence holds geometry bounds for circular geofences
	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	// Dispatch configures the hand-off to the notification channel
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// SQL statements slower than this are logged and counted; zero uses the default
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// RedisConfig defines the Redis connection used for coordination state
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// How long an event id stays claimed after it has been processed
	DedupTTL time.Duration `json:"dedupTTL" yaml:"dedupTTL"`

	// Upper bound for holding a per-user lock
	LockTTL time.Duration `json:"lockTTL" yaml:"lockTTL"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// AuthConfig defines operator token settings
type AuthConfig struct {
	OperatorSecret string        `json:"operatorSecret" yaml:"operatorSecret"`
	Issuer         string        `json:"issuer" yaml:"issuer"`
	TokenTTL       time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Attempts made before a publish is reported as failed
	MaxAttempts uint64 `json:"maxAttempts" yaml:"maxAttempts"`

	// Publish one user's events with a shared ordering key (google provider)
	OrderByUser bool `json:"orderByUser" yaml:"orderByUser"`
}

// MatchingConfig defines relevance matching behaviour
type MatchingConfig struct {
	RequireInterestMatch bool `json:"requireInterestMatch" yaml:"requireInterestMatch"`
	FallbackToAll        bool `json:"fallbackToAll" yaml:"fallbackToAll"`

	// Event types that may lead to a notification; empty means entry, dwell and exit
	NotifyOn []string `json:"notifyOn" yaml:"notifyOn" validate:"dive,oneof=entry dwell exit"`
}

// GeofenceConfig defines radius bounds in meters
type GeofenceConfig struct {
	DefaultRadius float64 `json:"defaultRadius" yaml:"defaultRadius" validate:"gte=0"`
	MinRadius     float64 `json:"minRadius" yaml:"minRadius" validate:"gte=0"`
	MaxRadius     float64 `json:"maxRadius" yaml:"maxRadius" validate:"gtefield=MinRadius"`
}

// DispatchConfig defines notification dispatch settings
type DispatchConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Deep link opened when the user taps the notification; "{offer_id}" is replaced
	DeepLinkTemplate string `json:"deepLinkTemplate" yaml:"deepLinkTemplate"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// THROTTLE_MAXPERDAY -> throttle.maxPerDay, aligned with the YAML keys.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the policy sections before any business component is built.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	if err := c.Throttle.Validate(); err != nil {
		return err
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Throttle == nil {
		cfg.Throttle = DefaultThrottleConfig()
	}

	if cfg.Matching == nil {
		cfg.Matching = &MatchingConfig{}
	}
	if len(cfg.Matching.NotifyOn) == 0 {
		cfg.Matching.NotifyOn = []string{"entry", "dwell", "exit"}
	}

	if cfg.Geofence == nil {
		cfg.Geofence = &GeofenceConfig{
			DefaultRadius: 100,
			MinRadius:     50,
			MaxRadius:     1000,
		}
	}

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	if cfg.Dispatch.Timeout <= 0 {
		cfg.Dispatch.Timeout = defaultDispatchTimeout
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
