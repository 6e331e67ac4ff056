package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the persistence path and the engine tunables.
type Config interface {
	BasePath() string
	ScanHour() int
	Stages() []int
	PushEnabled() bool
}

// LoadConfig reads .sambat config (yaml implicit) from SAMBAT_CONFIG_PATH
// or the working directory, with SAMBAT_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.sambat.db")
	viper.SetDefault("scan.hour", 8)
	viper.SetDefault("scan.stages", []int{15, 10, 5, 1, 0})
	viper.SetDefault("push.enabled", true)
	viper.SetConfigName(".sambat")
	viper.SetEnvPrefix("SAMBAT")
	viper.AutomaticEnv()

	if override := os.Getenv("SAMBAT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return FixedConfig{
		Path:    path,
		Hour:    viper.GetInt("scan.hour"),
		Offsets: viper.GetIntSlice("scan.stages"),
		Push:    viper.GetBool("push.enabled"),
	}, nil
}

// FixedConfig is a Config literal, handy for tests and embedding callers.
type FixedConfig struct {
	Path    string
	Hour    int
	Offsets []int
	Push    bool
}

func (f FixedConfig) BasePath() string  { return f.Path }
func (f FixedConfig) ScanHour() int     { return f.Hour }
func (f FixedConfig) Stages() []int     { return f.Offsets }
func (f FixedConfig) PushEnabled() bool { return f.Push }
