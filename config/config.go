package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultAccessTokenTTL         = 15 * time.Minute
	defaultAccessTokenExtendedTTL = 24 * time.Hour
	defaultRefreshTokenTTL        = 7 * 24 * time.Hour
	defaultRecoveryTokenTTL       = 24 * time.Hour
	defaultSignedURLExpiry        = 15 * time.Minute
	defaultSweepInterval          = time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
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

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// SMTP configuration for outbound transactional mail
	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`

	// Blob configuration for the media bucket
	Blob *BlobConfig `json:"blob" yaml:"blob"`

	// QRCode configuration for share QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Sweeper configuration for periodic cleanup of dead auth rows
	Sweeper *SweeperConfig `json:"sweeper" yaml:"sweeper"`
}

// ConnectionConfig describes a single Postgres endpoint.
type ConnectionConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// PostgresConfig defines the primary connection, optional read replicas and
// pool sizing.
type PostgresConfig struct {
	Host            string             `json:"host" yaml:"host"`
	Port            string             `json:"port" yaml:"port"`
	UserName        string             `json:"username" yaml:"username"`
	Password        string             `json:"password" yaml:"password"`
	DBName          string             `json:"dbName" yaml:"dbName"`
	SSLMode         string             `json:"sslMode" yaml:"sslMode"`
	Timezone        string             `json:"timezone" yaml:"timezone"`
	MaxOpenConns    int                `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int                `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration      `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration      `json:"connMaxIdleTime" yaml:"connMaxIdleTime"`
	Migrate         bool               `json:"migrate" yaml:"migrate"`
	Replicas        []ConnectionConfig `json:"replicas" yaml:"replicas"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost             int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL         time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	AccessTokenExtendedTTL time.Duration `json:"accessTokenExtendedTtl" yaml:"accessTokenExtendedTtl"`
	RefreshTokenTTL        time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
	RecoveryTokenTTL       time.Duration `json:"recoveryTokenTtl" yaml:"recoveryTokenTtl"`

	// ResetBaseURL is the public page the reset mail links to; the raw
	// recovery token is appended as a query parameter.
	ResetBaseURL string `json:"resetBaseUrl" yaml:"resetBaseUrl"`
}

// SMTPConfig defines the outbound mail server and addressing.
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`

	// InquiryInbox receives a copy of every inquiry submitted through the
	// public contact form.
	InquiryInbox string `json:"inquiryInbox" yaml:"inquiryInbox"`
}

// BlobConfig defines the media bucket and URL signing behavior.
type BlobConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "s3://atelier-media?region=ap-northeast-1"
	// in production or "file:///tmp/atelier-media" for local development.
	BucketURL       string        `json:"bucketUrl" yaml:"bucketUrl"`
	SignedURLExpiry time.Duration `json:"signedUrlExpiry" yaml:"signedUrlExpiry"`
}

// QRCodeConfig defines share QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// SweeperConfig defines periodic cleanup of expired sessions and dead
// recovery grants.
type SweeperConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyAuthDefaults(cfg)

	if cfg.Blob != nil && cfg.Blob.SignedURLExpiry <= 0 {
		cfg.Blob.SignedURLExpiry = defaultSignedURLExpiry
	}

	if cfg.Sweeper != nil && cfg.Sweeper.Interval <= 0 {
		cfg.Sweeper.Interval = defaultSweepInterval
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		if replicas := buildReplicasFromEnv(); len(replicas) != 0 {
			cfg.Postgres.Replicas = replicas
		}
	}

	return cfg, nil
}

// applyAuthDefaults fills the token lifetime knobs that were left unset.
func applyAuthDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Auth.AccessTokenExtendedTTL <= 0 {
		cfg.Auth.AccessTokenExtendedTTL = defaultAccessTokenExtendedTTL
	}
	if cfg.Auth.RefreshTokenTTL <= 0 {
		cfg.Auth.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if cfg.Auth.RecoveryTokenTTL <= 0 {
		cfg.Auth.RecoveryTokenTTL = defaultRecoveryTokenTTL
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
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []ConnectionConfig {
	var replicas []ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
