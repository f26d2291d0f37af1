// Package config собирает настройки клиента из .env файла и переменных
// окружения. Флаги командной строки (в main) имеют приоритет над окружением.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Имена переменных окружения.
const (
	EnvServerURL = "GARAGEKEEPER_SERVER_URL"
	EnvTokenFile = "GARAGEKEEPER_TOKEN_FILE"
	EnvDebug     = "GARAGEKEEPER_DEBUG"
)

// Значения по умолчанию.
const (
	defaultServerURL     = "https://maintenancesystembc-production.up.railway.app"
	defaultTokenFileName = "token"
	defaultConfigDirName = "garagekeeper"
)

// Config содержит настройки клиента.
type Config struct {
	// ServerURL — базовый URL сервера учета ТО (без /api/v1).
	ServerURL string
	// TokenFile — путь к файлу с сохраненным bearer токеном.
	TokenFile string
	// Debug включает отладочный подвал в TUI.
	Debug bool
}

// Load читает настройки: сначала .env (если есть), затем переменные
// окружения, затем значения по умолчанию.
func Load() *Config {
	// .env опционален, его отсутствие не является ошибкой
	_ = godotenv.Load()

	return &Config{
		ServerURL: getEnv(EnvServerURL, defaultServerURL),
		TokenFile: getEnv(EnvTokenFile, defaultTokenPath()),
		Debug:     getEnvBool(EnvDebug, false),
	}
}

// defaultTokenPath возвращает путь к файлу токена в конфигурационной
// директории пользователя, с запасным вариантом в текущей директории.
func defaultTokenPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return defaultTokenFileName
	}
	return filepath.Join(configDir, defaultConfigDirName, defaultTokenFileName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return defaultValue
	}
}
