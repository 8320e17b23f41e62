package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Knowledge KnowledgeConfig `mapstructure:"knowledge"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
	Database  DatabaseConfig  `mapstructure:"database"`
}

type KnowledgeConfig struct {
	DataFile string `mapstructure:"data_file" validate:"required,jsonfile"`
	// SeedFile replaces the built-in seed knowledge when the data file does not exist yet.
	SeedFile string `mapstructure:"seed_file" validate:"omitempty,file,jsonfile"`
}

type ChatConfig struct {
	Name               string `mapstructure:"name" validate:"required"`
	ContextHistorySize int    `mapstructure:"context_history_size" validate:"gte=0"`
	PatternLogSize     int    `mapstructure:"pattern_log_size" validate:"gte=0"`
}

type TemplatesConfig struct {
	GlossaryTemplate string `mapstructure:"glossary_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	GlossaryDirectory string `mapstructure:"glossary_directory"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/eliana")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("knowledge.data_file", "word_meanings.json")
	v.SetDefault("knowledge.seed_file", "")
	v.SetDefault("chat.name", "Eliana")
	v.SetDefault("chat.context_history_size", 10)
	v.SetDefault("chat.pattern_log_size", 50)
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.glossary_template", "")
	v.SetDefault("outputs.glossary_directory", filepath.Join("outputs", "glossary"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "eliana")
	v.SetDefault("database.username", "user")

	if err := v.BindEnv("knowledge.data_file", "ELIANA_DATA_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind ELIANA_DATA_FILE environment variable: %w", err)
	}
	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
