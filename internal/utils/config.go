package utils

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	// CommandTimeoutSeconds is passed through to the driver as statement_timeout.
	CommandTimeoutSeconds int
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.PostgresHost +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" port=" + c.PostgresPort +
		" sslmode=disable TimeZone=UTC" +
		" statement_timeout=" + strconv.Itoa(c.CommandTimeoutSeconds*1000)
}

type ServerConfig struct {
	Port string
	// RateLimitRPS limits the public auth endpoints, requests per second per IP.
	RateLimitRPS float64
}

type AdminConfig struct {
	Username string
	Password string
}

type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	// ExpireMinutes is the access-token lifetime for registered users.
	ExpireMinutes int
	// RefreshExpireDays is added to the access-token expiry to obtain the
	// refresh-token expiry.
	RefreshExpireDays int
	// AnonymousExpireMonths is the access-token lifetime for anonymous
	// users, expressed in months of 30 days.
	AnonymousExpireMonths int
}

type SnowflakeConfig struct {
	// WorkerID < 0 means derive from host identity.
	WorkerID     int64
	DatacenterID int64
}

type OptionsConfig struct {
	// Path to the YAML file holding the model catalog, knowledge languages
	// and RAG index provider options.
	Path string
}

type Config struct {
	Database  *DatabaseConfig
	Server    *ServerConfig
	Admin     *AdminConfig
	Token     *TokenConfig
	Snowflake *SnowflakeConfig
	Options   *OptionsConfig
}

func LoadConfig(dotenvPath string) (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load(dotenvPath)

	cfg := &Config{
		Database: &DatabaseConfig{
			PostgresHost:          getEnv("POSTGRES_HOST", "localhost"),
			PostgresPort:          getEnv("POSTGRES_PORT", "5432"),
			PostgresUser:          os.Getenv("POSTGRES_USER"),
			PostgresPassword:      os.Getenv("POSTGRES_PASSWORD"),
			PostgresDB:            os.Getenv("POSTGRES_DB"),
			CommandTimeoutSeconds: getInt("POSTGRES_COMMAND_TIMEOUT_SECONDS", 30),
		},
		Server: &ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			RateLimitRPS: float64(getInt("AUTH_RATE_LIMIT_RPS", 10)),
		},
		Admin: &AdminConfig{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		Token: &TokenConfig{
			Secret:                os.Getenv("TOKEN_SECRET"),
			Issuer:                getEnv("TOKEN_ISSUER", "lumen-server"),
			Audience:              getEnv("TOKEN_AUDIENCE", "lumen-web"),
			ExpireMinutes:         getInt("TOKEN_EXPIRE_MINUTES", 120),
			RefreshExpireDays:     getInt("REFRESH_TOKEN_EXPIRE_DAYS", 7),
			AnonymousExpireMonths: getInt("ANONYMOUS_TOKEN_EXPIRE_MONTHS", 120),
		},
		Snowflake: &SnowflakeConfig{
			WorkerID:     int64(getInt("SNOWFLAKE_WORKER_ID", -1)),
			DatacenterID: int64(getInt("SNOWFLAKE_DATACENTER_ID", 0)),
		},
		Options: &OptionsConfig{
			Path: getEnv("OPTIONS_PATH", "configs/options.yaml"),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
