package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Availability AvailabilityConfig
	Booking      BookingConfig
}

type AppConfig struct {
	Port               string
	Env                string
	Timezone           string
	CORSAllowedOrigins []string
}

type DBConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	Timezone       string
	MigrateOnStart bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// AvailabilityConfig tunes the availability engine.
type AvailabilityConfig struct {
	SlotMinutes      int
	DefaultDaysAhead int
	MaxDaysAhead     int
	OpenDatesWorkers int
	Location         *time.Location
}

// BookingConfig tunes the appointment write path.
type BookingConfig struct {
	SlotHoldTTL time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "Europe/Istanbul")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DB_MIGRATE_ON_START", false)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("AVAILABILITY_SLOT_MINUTES", 30)
	v.SetDefault("AVAILABILITY_DEFAULT_DAYS_AHEAD", 30)
	v.SetDefault("AVAILABILITY_MAX_DAYS_AHEAD", 365)
	v.SetDefault("AVAILABILITY_OPEN_DATES_WORKERS", 4)

	if err := v.ReadInConfig(); err != nil {
		// .env is optional, the environment alone is enough
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	slotHoldTTL, err := time.ParseDuration(v.GetString("BOOKING_SLOT_HOLD_TTL"))
	if err != nil {
		slotHoldTTL = 10 * time.Second
	}

	timezone := v.GetString("APP_TIMEZONE")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port:               v.GetString("APP_PORT"),
			Env:                v.GetString("APP_ENV"),
			Timezone:           timezone,
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			Timezone:       timezone,
			MigrateOnStart: v.GetBool("DB_MIGRATE_ON_START"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Availability: AvailabilityConfig{
			SlotMinutes:      positiveOr(v.GetInt("AVAILABILITY_SLOT_MINUTES"), 30),
			DefaultDaysAhead: positiveOr(v.GetInt("AVAILABILITY_DEFAULT_DAYS_AHEAD"), 30),
			MaxDaysAhead:     positiveOr(v.GetInt("AVAILABILITY_MAX_DAYS_AHEAD"), 365),
			OpenDatesWorkers: positiveOr(v.GetInt("AVAILABILITY_OPEN_DATES_WORKERS"), 4),
			Location:         location,
		},
		Booking: BookingConfig{
			SlotHoldTTL: slotHoldTTL,
		},
	}

	return config, nil
}

func positiveOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

// splitList parses a comma-separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
