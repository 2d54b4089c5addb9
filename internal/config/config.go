package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Threads  int          `mapstructure:"threads"`
	Parallel bool         `mapstructure:"parallel"`
	Debug    bool         `mapstructure:"debug"`
	Server   ServerConfig `mapstructure:"server"`
	Arena    ArenaConfig  `mapstructure:"arena"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type ArenaConfig struct {
	Games       int   `mapstructure:"games"`
	Concurrency int   `mapstructure:"concurrency"`
	Seed        int64 `mapstructure:"seed"`
}

const envPrefix = "COUNTERXO"

// Load reads defaults, then the optional config file, then COUNTERXO_* environment variables.
func Load(cfgPath string) (*Config, error) {
	var v = viper.New()
	v.SetDefault("threads", 0)
	v.SetDefault("parallel", false)
	v.SetDefault("debug", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("arena.games", 1000)
	v.SetDefault("arena.concurrency", runtime.NumCPU())
	v.SetDefault("arena.seed", 1)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %v: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Threads < 0 {
		return fmt.Errorf("threads must not be negative: %v", cfg.Threads)
	}
	if cfg.Arena.Games < 0 {
		return fmt.Errorf("arena.games must not be negative: %v", cfg.Arena.Games)
	}
	if cfg.Arena.Concurrency < 1 {
		return fmt.Errorf("arena.concurrency must be positive: %v", cfg.Arena.Concurrency)
	}
	return nil
}
