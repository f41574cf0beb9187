package store

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is relative to the working directory.
	DefaultPath = "entries"
	defaultTick = time.Second
)

type Config interface {
	BasePath() string
	LogLevel() string
	// LogFile is where the terminal UI writes logs.
	LogFile() string
	Tick() time.Duration
}

func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("tick", defaultTick)
	v.SetConfigName(".reflect") // .yaml is implicit
	v.SetEnvPrefix("REFLECT")
	v.AutomaticEnv()
	_ = v.BindEnv("log.level", "REFLECT_LOG_LEVEL")
	_ = v.BindEnv("log.file", "REFLECT_LOG_FILE")

	if override := os.Getenv("REFLECT_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	logFile, err := homedir.Expand(v.GetString("log.file"))
	if err != nil {
		return nil, err
	}
	if logFile == "" {
		logFile = filepath.Join(path, "reflect.log")
	}

	tick := v.GetDuration("tick")
	if tick <= 0 {
		tick = defaultTick
	}

	return &fileConfig{
		Path:  path,
		Level: v.GetString("log.level"),
		Log:   logFile,
		Every: tick,
	}, nil
}

type fileConfig struct {
	Path  string        `json:"path"`
	Level string        `json:"level"`
	Log   string        `json:"log"`
	Every time.Duration `json:"tick"`
}

func (f *fileConfig) BasePath() string    { return f.Path }
func (f *fileConfig) LogLevel() string    { return f.Level }
func (f *fileConfig) LogFile() string     { return f.Log }
func (f *fileConfig) Tick() time.Duration { return f.Every }
