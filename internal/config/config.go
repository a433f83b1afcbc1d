package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTUserSecret string `env:"JWT_USER_SECRET"`
	AMQPURL       string `env:"AMQP_URL"`

	// DepositAccounts реквизиты приема платежей в формате method:account,method:account.
	DepositAccounts map[string]string `env:"DEPOSIT_ACCOUNTS" envKeyValSeparator:":" envSeparator:","`
}

func LoadConfig() (*Config, error) {
	// .env опционален, в контейнерах переменные приходят из окружения.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("JWT user secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.AMQPURL, "q", "", "AMQP broker URL for the settlement feed")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:   envConfig.JWTUserSecret,
		AMQPURL:         defaultIfBlank(envConfig.AMQPURL, flagsConfig.AMQPURL),
		DepositAccounts: defaultIfEmpty(envConfig.DepositAccounts, defaultDepositAccounts()),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfEmpty(value map[string]string, defaultValue map[string]string) map[string]string {
	if len(value) == 0 {
		return defaultValue
	}
	return value
}

func defaultDepositAccounts() map[string]string {
	return map[string]string{
		"bkash":  "01700000001",
		"nagad":  "01700000002",
		"rocket": "01700000003",
	}
}
