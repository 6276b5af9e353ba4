package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvTest  = "test"
	EnvProd  = "prod"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"prod"`
	PostgreSQL PostgreSQL `yaml:"postgresql"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Metrics    Metrics    `yaml:"metrics"`
	Swagger    Swagger    `yaml:"swagger"`
}

type PostgreSQL struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-required:"true"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-required:"true"`
	Username string `yaml:"username" env:"POSTGRES_USER" env-required:"true"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" env-required:"true"`
	Database string `yaml:"database" env:"POSTGRES_DB" env-required:"true"`
	MaxConns int32  `yaml:"max_conns" env:"POSTGRES_MAX_CONNS" env-default:"10"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout          time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	AllowedMethods   []string      `yaml:"allowed_methods" env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string      `yaml:"allowed_headers" env-default:"*"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path" env-default:"/metrics"`
}

type Swagger struct {
	Enabled bool `yaml:"enabled" env:"SWAGGER_ENABLED" env-default:"true"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
