package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk base path for the store.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .soulsync config file (or SOULSYNC_* environment
// overrides) to locate the database path.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.soulsync.db")
	viper.SetDefault("media", "~/.soulsync.media")
	viper.SetConfigName(".soulsync") // .yaml is implicit
	viper.SetEnvPrefix("SOULSYNC")
	viper.AutomaticEnv()

	if override := os.Getenv("SOULSYNC_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

// LoadMediaPath resolves the on-disk bucket directory media objects live in.
// LoadConfig establishes the default.
func LoadMediaPath() (string, error) {
	path := viper.GetString("media")
	if path == "" {
		path = "~/.soulsync.media"
	}
	return homedir.Expand(path)
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
