package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/maynagashev/garagekeeper/internal/config"
	"github.com/maynagashev/garagekeeper/internal/tui"
)

const (
	logDir             = "logs"
	logFileName        = "client.log"
	logFilePermissions = 0666
)

// Переменные для версии и даты сборки, устанавливаются через ldflags.
var (
	version = "dev" // Значение по умолчанию, если не установлено при сборке
	//nolint:gochecknoglobals // Устанавливается через ldflags при сборке
	buildDate = "unknown" // Значение по умолчанию
	//nolint:gochecknoglobals // Устанавливается через ldflags при сборке
	commitHash = "N/A" // Значение по умолчанию
)

// setupLogging настраивает логирование в файл logs/client.log.
// TUI занимает stdout, поэтому логи уходят только в файл.
func setupLogging() {
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		// Используем panic, так как без логов продолжать нет смысла
		panic("Не удалось создать директорию для логов: " + err.Error())
	}
	logPath := filepath.Join(logDir, logFileName)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		panic("Не удалось открыть лог-файл: " + err.Error())
	}
	// Файл должен оставаться открытым на время работы приложения,
	// его закроет ОС при завершении процесса.

	logHandler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(logHandler))
	slog.Info("Логгер инициализирован", "path", logPath)
}

func main() {
	versionFlag := flag.Bool("version", false, "Показать версию и дату сборки")

	setupLogging()

	// Настройки по умолчанию: .env + переменные окружения
	cfg := config.Load()

	// Флаги переопределяют окружение
	serverURLFlag := flag.String("server-url", cfg.ServerURL,
		"URL сервера учета ТО (переопределяет "+config.EnvServerURL+")")
	tokenFileFlag := flag.String("token-file", cfg.TokenFile,
		"Путь к файлу с токеном сессии (переопределяет "+config.EnvTokenFile+")")
	debugModeFlag := flag.Bool("debug", cfg.Debug, "Включить режим отладки TUI")

	flag.Parse()

	// Если указан флаг --version, выводим информацию и выходим
	if *versionFlag {
		// Используем стандартный log для вывода в консоль, так как slog настроен на файл
		log.SetOutput(os.Stdout)
		log.SetFlags(0)
		log.Println("GarageKeeper Client")
		log.Printf("Version: %s", version)
		log.Printf("Build Date: %s", buildDate)
		log.Printf("Commit Hash: %s", commitHash)
		os.Exit(0)
	}

	if *serverURLFlag == "" {
		slog.Error("URL сервера не может быть пустым",
			"проверьте", "флаг -server-url и переменную окружения "+config.EnvServerURL)
		os.Exit(1)
	}

	slog.Info("Запуск GarageKeeper",
		"server_url", *serverURLFlag,
		"token_file", *tokenFileFlag,
		"debug_mode", *debugModeFlag,
	)

	tui.Start(*serverURLFlag, *tokenFileFlag, *debugModeFlag)
}
