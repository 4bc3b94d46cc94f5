package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth       AuthConfig
	SuperAdmin SuperAdminConfig
	Mongo      MongoConfig
	Redis      RedisConfig
}

// AuthConfig is the configuration surface consumed by the authentication
// core: signing secret, token lifetime, and throttle limits. The secret must
// be at least 32 bytes; the token codec enforces this at construction.
type AuthConfig struct {
	JWTSecret        string `env:"JWT_SECRET"`
	TokenTTLMinutes  int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=15"`
	BcryptCost       int    `env:"BCRYPT_COST,                 default=10"`
	MaxLoginFailures int    `env:"MAX_LOGIN_FAILURES,          default=5"`
}

// SuperAdminConfig seeds the one-time bootstrap account at process start.
type SuperAdminConfig struct {
	Username string `env:"SUPER_ADMIN_USERNAME"`
	Email    string `env:"SUPER_ADMIN_EMAIL"`
	Password string `env:"SUPER_ADMIN_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=client_admin"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
