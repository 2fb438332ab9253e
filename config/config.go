package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultShopEmail = "mark@primeroofingfl.com"

type Config struct {
	HTTPAddr      string
	TelegramToken string

	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	ShopEmail      string

	PhotoMaxSide int
	Debug        bool
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SenderPassword: os.Getenv("SENDER_PASSWORD"),
		ShopEmail:      getEnv("SHOP_EMAIL", defaultShopEmail),
		Debug:          os.Getenv("CHASE_LOG_LEVEL") == "debug",
	}

	port, err := getInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	cfg.SMTPPort = port

	maxSide, err := getInt("PHOTO_MAX_SIDE", 2048)
	if err != nil {
		return nil, err
	}
	cfg.PhotoMaxSide = maxSide

	return cfg, nil
}

// MailConfigured сообщает, заданы ли учётные данные отправителя.
func (c *Config) MailConfigured() bool {
	return c.SenderEmail != "" && c.SenderPassword != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, val)
	}
	return n, nil
}
