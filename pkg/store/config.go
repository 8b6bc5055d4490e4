package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the persisted task list.
type Config interface {
	BasePath() string
	Key() string
}

// LoadConfig reads .todo.yaml from $TODO_CONFIG_PATH or the working
// directory, with TODO_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.todo.db")
	viper.SetDefault("key", DefaultKey)
	viper.SetConfigName(".todo") // .yaml is implicit
	viper.SetEnvPrefix("TODO")
	viper.AutomaticEnv()

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
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

	return &fileConfig{Path: path, Slot: viper.GetString("key")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	Slot string `json:"key"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Key() string {
	return f.Slot
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path string
	Slot string
}

func (s StaticConfig) BasePath() string {
	return s.Path
}

func (s StaticConfig) Key() string {
	if s.Slot == "" {
		return DefaultKey
	}
	return s.Slot
}
