package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".conference-tracker"
	envPrefix  = "CT"

	serverListenKey         = "server.listen"
	serverMaxUploadBytesKey = "server.max_upload_bytes"
	scheduleSeedKey         = "schedule.seed"
	scheduleMaxTracksKey    = "schedule.max_tracks"
	logLevelKey             = "log.level"
	logFormatKey            = "log.format"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Listen         string `mapstructure:"listen"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
}

type ScheduleConfig struct {
	// Seed fixes the random source; 0 seeds every run afresh.
	Seed uint64 `mapstructure:"seed"`
	// MaxTracks caps the track loop; 0 disables the cap.
	MaxTracks int `mapstructure:"max_tracks"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads config.toml from path, or from ~/.conference-tracker when path is
// empty, and applies CT_* environment overrides. Only an explicit path must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}

		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, configDir))

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(serverListenKey, "127.0.0.1:8000")
	v.SetDefault(serverMaxUploadBytesKey, int64(10<<20))
	v.SetDefault(scheduleSeedKey, uint64(0))
	v.SetDefault(scheduleMaxTracksKey, 100)
	v.SetDefault(logLevelKey, "info")
	v.SetDefault(logFormatKey, "json")
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Listen) == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive")
	}
	if c.Schedule.MaxTracks < 0 {
		return fmt.Errorf("schedule.max_tracks must not be negative")
	}

	return nil
}
