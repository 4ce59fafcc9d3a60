package config

import (
	"fmt"
	"time"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	Boost    BoostConfig    `yaml:"boost"`
}

type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	BasePath string `yaml:"base_path"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
}

type JWTConfig struct {
	Issuer          string `yaml:"issuer"`
	AccessTokenTTL  string `yaml:"access_token_ttl"`
	RefreshTokenTTL string `yaml:"refresh_token_ttl"`
}

type BoostConfig struct {
	// Расписание фоновой очистки просроченных бустов в формате cron.
	SweepSchedule string `yaml:"sweep_schedule"`
}

func (cfg *JWTConfig) AccessTTL() (time.Duration, error) {
	ttl, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return 0, fmt.Errorf("неверный access_token_ttl: %w", err)
	}
	return ttl, nil
}

func (cfg *JWTConfig) RefreshTTL() (time.Duration, error) {
	ttl, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return 0, fmt.Errorf("неверный refresh_token_ttl: %w", err)
	}
	return ttl, nil
}
