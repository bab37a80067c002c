package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Mailjet  MailjetConfig
	OTP      OTPConfig
	Session  SessionConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Debug     bool
	LogPath   string
	MediaPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// MailjetConfig holds the transactional email provider credentials and
// sender identity. Loaded once at startup and injected into the mailer.
type MailjetConfig struct {
	APIKey    string
	APISecret string
	FromEmail string
	FromName  string
	APIURL    string
}

type OTPConfig struct {
	ExpiryMinutes int
	Length        int
}

type SessionConfig struct {
	ExpiryHours int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 15)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MEDIA_PATH", "media/")
	viper.SetDefault("MAILJET_API_URL", "https://api.mailjet.com/v3.1/send")
	viper.SetDefault("MAILJET_FROM_NAME", "Sreca")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			Port:      viper.GetString("PORT"),
			Debug:     viper.GetBool("DEBUG"),
			LogPath:   viper.GetString("LOG_PATH"),
			MediaPath: viper.GetString("MEDIA_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Mailjet: MailjetConfig{
			APIKey:    viper.GetString("MAILJET_API_KEY"),
			APISecret: viper.GetString("MAILJET_API_SECRET"),
			FromEmail: viper.GetString("MAILJET_FROM_EMAIL"),
			FromName:  viper.GetString("MAILJET_FROM_NAME"),
			APIURL:    viper.GetString("MAILJET_API_URL"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
	}

	return config, nil
}
