package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CacheDriverNone   = "none"
	CacheDriverRedis  = "redis"
	CacheDriverSQLite = "sqlite"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Game     Game   `yaml:"game"`
	Search   Search `yaml:"search"`
	Cache    Cache  `yaml:"cache"`
	Redis    Redis  `yaml:"redis"`

	SQLiteStoragePath string `yaml:"sqlite-storage-path" env-default:"solutions.db"`
}

type Game struct {
	Size        int    `yaml:"size" env-default:"3"`
	FirstPlayer string `yaml:"first-player" env-default:"X"`
}

type Search struct {
	// MaxEmptyCells bounds exhaustive search; 0 disables the guard.
	MaxEmptyCells int `yaml:"max-empty-cells" env-default:"10"`
}

type Cache struct {
	Driver string        `yaml:"driver" env-default:"none"`
	TTL    time.Duration `yaml:"ttl" env-default:"0s"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
