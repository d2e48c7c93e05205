package config

import (
	"log"

	"github.com/spf13/viper"
)

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		SuggestionCount   int `mapstructure:"suggestion_count"`
		PracticeWordLimit int `mapstructure:"practice_word_limit"`
	} `mapstructure:"app"`
	Auth struct {
		JWTSecret    string `mapstructure:"jwt_secret"`
		CookieName   string `mapstructure:"cookie_name"`
		CookieSecure bool   `mapstructure:"cookie_secure"`
		SessionTTL   int    `mapstructure:"session_ttl_hours"`
	} `mapstructure:"auth"`
	TTS struct {
		BaseURL        string `mapstructure:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"tts"`
	Audio struct {
		Player string `mapstructure:"player"` // forces a specific player binary; empty probes the known list
	} `mapstructure:"audio"`
	Mailer struct {
		Type string `mapstructure:"type"` // "log", "smtp" or "ses"
	} `mapstructure:"mailer"`
	SMTP SMTPConfig `mapstructure:"smtp"`
	SES  SESConfig  `mapstructure:"ses"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: config file not found, relying on defaults and environment variables")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Database.URL == "" {
		log.Printf("Database URL not set, using default %q", DefaultDatabaseURL)
		Cfg.Database.URL = DefaultDatabaseURL
	}
	if Cfg.App.SuggestionCount <= 0 {
		Cfg.App.SuggestionCount = DefaultSuggestionCount
	}
	if Cfg.App.PracticeWordLimit <= 0 {
		Cfg.App.PracticeWordLimit = DefaultPracticeWordLimit
	}
	if Cfg.Auth.CookieName == "" {
		Cfg.Auth.CookieName = DefaultSessionCookieName
	}
	if Cfg.Auth.SessionTTL <= 0 {
		Cfg.Auth.SessionTTL = DefaultSessionTTLHours
	}
	if Cfg.Auth.JWTSecret == "" {
		log.Println("Warning: auth.jwt_secret not set, using insecure development key")
		Cfg.Auth.JWTSecret = "dev-key-change-in-production"
	}
	if Cfg.TTS.BaseURL == "" {
		Cfg.TTS.BaseURL = DefaultTTSBaseURL
	}
	if Cfg.TTS.TimeoutSeconds <= 0 {
		Cfg.TTS.TimeoutSeconds = DefaultTTSTimeoutSeconds
	}
	if Cfg.Mailer.Type == "" {
		Cfg.Mailer.Type = "log"
	}

	log.Println("Config loaded successfully")
	return nil
}
