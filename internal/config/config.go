package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	SiteTitle  string    `mapstructure:"siteTitle"`
	OutputDir  string    `mapstructure:"outputDir"`
	BaseURL    string    `mapstructure:"baseURL"`
	ContentDir string    `mapstructure:"contentDir"`
	DraftsFile string    `mapstructure:"draftsFile"`
	Port       int       `mapstructure:"port"`
	CacheSize  int       `mapstructure:"cacheSize"`
	CORS       []string  `mapstructure:"corsOrigins"`
	Log        LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("siteTitle", "Blog & Project Showcase")
	v.SetDefault("outputDir", "public")
	v.SetDefault("baseURL", "")
	v.SetDefault("contentDir", "")
	v.SetDefault("draftsFile", ".showcase/drafts.json")
	v.SetDefault("port", 3000)
	v.SetDefault("cacheSize", 256)
	v.SetDefault("corsOrigins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads cfgFile (or ./config.yaml when empty) plus SHOWCASE_*
// environment overrides. A missing default config file is not an error;
// found reports whether a file was read.
func Load(cfgFile string) (cfg Config, found bool, err error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SHOWCASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return Config{}, false, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		found = true
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, found, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return cfg, found, nil
}
