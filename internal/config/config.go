package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           int
	SecretKey      string
	Algorithm      string
	AccessTokenTTL time.Duration

	Usernames      []string
	PasswordHashes []string

	DatabaseURL      string
	CollectItemCodes []string
	RedeemPayCodes   []string
}

func Load() Config {
	cfg := Config{
		Port:             8011,
		SecretKey:        os.Getenv("SECRET_KEY"),
		Algorithm:        "HS256",
		AccessTokenTTL:   30 * time.Minute,
		Usernames:        splitList(os.Getenv("USERNAMES")),
		PasswordHashes:   splitList(os.Getenv("HASHED_PASSWORDS")),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		CollectItemCodes: []string{"0000000001"},
		RedeemPayCodes:   []string{"999"},
	}

	if v := os.Getenv("ALGORITHM"); v != "" {
		cfg.Algorithm = v
	}

	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AccessTokenTTL = time.Duration(n) * time.Minute
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			cfg.Port = p
		}
	}

	if v := os.Getenv("COLLECT_ITEM_CODES"); v != "" {
		cfg.CollectItemCodes = splitList(v)
	}
	if v := os.Getenv("REDEEM_PAY_CODES"); v != "" {
		cfg.RedeemPayCodes = splitList(v)
	}

	return cfg
}

// Validate checks the settings that have no safe default.
func (c Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY is required")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}

func (c Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
