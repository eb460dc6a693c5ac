package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Payment PaymentConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// StoreConfig selects the ledger persistence backend.
// Backend is one of "redis", "file" or "memory".
type StoreConfig struct {
	Backend string
	Dir     string
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

type AdminConfig struct {
	Username     string
	PasswordHash string
}

type PaymentConfig struct {
	GatewayDelay time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 12 * time.Hour
	}

	gatewayDelay, err := time.ParseDuration(viper.GetString("PAYMENT_GATEWAY_DELAY"))
	if err != nil {
		gatewayDelay = 2 * time.Second
	}

	storeBackend := viper.GetString("STORE_BACKEND")
	if storeBackend == "" {
		storeBackend = "file"
	}

	storeDir := viper.GetString("STORE_DIR")
	if storeDir == "" {
		storeDir = "data"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Store: StoreConfig{
			Backend: storeBackend,
			Dir:     storeDir,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Admin: AdminConfig{
			Username:     viper.GetString("ADMIN_USERNAME"),
			PasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		},
		Payment: PaymentConfig{
			GatewayDelay: gatewayDelay,
		},
	}

	return config, nil
}
