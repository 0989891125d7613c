package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Carousel CarouselConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// CarouselConfig holds slider timing and the optional deck file.
type CarouselConfig struct {
	AutoDelay time.Duration `mapstructure:"auto_delay"`
	FrameRate int           `mapstructure:"frame_rate"`
	DeckPath  string        `mapstructure:"deck_path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Width int
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix SHOWCASE_.
func Load() (Config, error) {
	return load(os.Getenv("SHOWCASE_CONFIG"))
}

// LoadFile is Load with an explicit config file path.
func LoadFile(path string) (Config, error) {
	return load(path)
}

func load(cfgPath string) (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "showcase", "showcase.db"))
	v.SetDefault("carousel.auto_delay", "6200ms")
	v.SetDefault("carousel.frame_rate", 30)
	v.SetDefault("carousel.deck_path", "")
	v.SetDefault("ui.width", 0)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "showcase", "showcase.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	explicit := cfgPath != ""
	if explicit {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "showcase"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOWCASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the carousel cannot run with.
func (c Config) Validate() error {
	if c.Carousel.AutoDelay <= 0 {
		return fmt.Errorf("config: carousel.auto_delay must be positive, got %s", c.Carousel.AutoDelay)
	}
	if c.Carousel.FrameRate <= 0 || c.Carousel.FrameRate > 240 {
		return fmt.Errorf("config: carousel.frame_rate must be in 1..240, got %d", c.Carousel.FrameRate)
	}
	if c.UI.Width < 0 {
		return fmt.Errorf("config: ui.width must not be negative")
	}
	return nil
}

// FrameInterval is the time between animation frames. A rate that is not
// positive falls back to 30 frames per second.
func (c CarouselConfig) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.FrameRate)
}
