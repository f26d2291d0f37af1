package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/maynagashev/garagekeeper/internal/api"
	"github.com/maynagashev/garagekeeper/internal/token"
)

const (
	statusMessageTimeout     = 2 * time.Second // Время отображения статусных сообщений
	helpStatusHeightOffset   = 2               // Высота строки помощи и статуса
	docStyleMarginVertical   = 1
	docStyleMarginHorizontal = 2

	statusNotLoggedIn = "Не выполнен"
)

// Init - команда, выполняемая при запуске приложения.
// Если сессия восстановлена, сразу запускаем загрузку списка автомобилей.
func (m *model) Init() tea.Cmd {
	if m.state == vehicleListScreen {
		m.loading = true
		return tea.Batch(textinput.Blink, m.makeFetchVehiclesCmd())
	}
	return textinput.Blink
}

// setStatusMessage устанавливает статусное сообщение и запускает таймер для его очистки.
func (m *model) setStatusMessage(status string) (tea.Model, tea.Cmd) {
	m.savingStatus = status
	// Если таймер уже есть, останавливаем его
	if m.statusTimer != nil {
		m.statusTimer.Stop()
		m.statusTimer = nil
	}
	// Запускаем команду для очистки статуса через заданное время
	cmd := clearStatusCmd(statusMessageTimeout)
	return m, cmd
}

// getMainContentView возвращает основное содержимое для текущего состояния.
func (m *model) getMainContentView() string {
	switch m.state {
	case loginRegisterChoiceScreen:
		return m.viewLoginRegisterChoiceScreen()
	case loginScreen:
		return m.viewLoginScreen()
	case registerScreen:
		return m.viewRegisterScreen()
	case vehicleListScreen:
		return m.viewVehicleListScreen()
	case vehicleDetailScreen:
		return m.viewVehicleDetailScreen()
	case vehicleAddScreen:
		return m.viewVehicleAddScreen()
	case vehicleEditScreen:
		return m.viewVehicleEditScreen()
	case maintenanceAddScreen:
		return m.viewMaintenanceAddScreen()
	case maintenanceHistoryScreen:
		return m.viewMaintenanceHistoryScreen()
	default:
		return "Неизвестное состояние!"
	}
}

// getContentAndHelp возвращает основное содержимое и строку помощи для текущего экрана.
func (m *model) getContentAndHelp() (string, string) {
	mainContent := m.getMainContentView()
	help, ok := m.helpTextMap[m.state]
	if !ok {
		help = "Unknown state"
	}
	return mainContent, help
}

// getDebugInfoString генерирует отладочную информацию.
func (m *model) getDebugInfoString() string {
	var debugInfo strings.Builder
	debugInfo.WriteString(fmt.Sprintf(" [State: %s]\n", m.state.String()))
	debugInfo.WriteString(fmt.Sprintf(" [URL: %s]\n", m.serverURL))
	debugInfo.WriteString(fmt.Sprintf(" [Token set: %t]\n", m.authToken != ""))
	debugInfo.WriteString(fmt.Sprintf(" [Loading: %t]\n", m.loading))
	debugInfo.WriteString(fmt.Sprintf(" [Vehicles: %d]\n", len(m.vehicleList.Items())))
	return debugInfo.String()
}

// View отрисовывает пользовательский интерфейс.
func (m *model) View() string {
	mainContent, help := m.getContentAndHelp()

	// --- Формируем подвал (статус + отладка) --- //
	var footer strings.Builder

	loadingIndicator := ""
	if m.loading {
		loadingIndicator = " [Загрузка...]"
	}
	displayStatus := m.savingStatus != "" || m.loading
	if displayStatus {
		footer.WriteString("\n") // Перенос перед статусом
		footer.WriteString(m.savingStatus)
		footer.WriteString(loadingIndicator)
	}

	// Добавляем отладку, если включен режим
	if m.debugMode {
		if help == "Unknown state" {
			help = fmt.Sprintf("State: %s", m.state.String())
		}
		footer.WriteString("\n\n---\nОтладка:\n")
		footer.WriteString(m.getDebugInfoString())
	}

	styledContent := m.docStyle.Render(mainContent)
	// Сначала основной контент, потом помощь, потом весь подвал
	return fmt.Sprintf("%s\n%s%s", styledContent, help, footer.String())
}

// Start запускает TUI приложение.
// Здесь же работает шлюз сессии: при наличии сохраненного токена
// приложение стартует сразу со списка автомобилей, иначе — со входа.
func Start(serverURL, tokenPath string, debugMode bool) {
	apiClient := api.NewHTTPClient(serverURL)
	slog.Info("API клиент инициализирован", "baseURL", serverURL)

	tokenStore := token.NewStore(tokenPath)

	m := initModel(serverURL, debugMode, apiClient, tokenStore)

	// --- Шлюз сессии: одна проверка хранилища на старте --- //
	savedToken, err := tokenStore.Read()
	if err != nil {
		// Не фатально: просто начинаем с экрана входа
		slog.Error("Ошибка чтения сохраненного токена", "path", tokenPath, "error", err)
	}
	if savedToken != "" {
		m.authToken = savedToken
		m.apiClient.SetAuthToken(savedToken)
		m.loginStatus = "Вход выполнен (сессия восстановлена)"
		m.state = vehicleListScreen
		slog.Info("Сессия восстановлена из хранилища токена", "path", tokenPath)
	} else {
		slog.Info("Сохраненный токен не найден, переход к экрану входа")
	}

	// Используем FullAltScreen для корректной работы списка
	p := tea.NewProgram(&m, tea.WithAltScreen()) // Передаем указатель на модель
	if _, errRun := p.Run(); errRun != nil {
		slog.Error("Ошибка при запуске TUI", "error", errRun)
		os.Exit(1)
	}
}
