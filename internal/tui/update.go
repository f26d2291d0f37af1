package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/maynagashev/garagekeeper/internal/api"
)

// Update обрабатывает сообщения и обновляет состояние модели.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// --- Глобальные сообщения, не зависящие от экрана --- //
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := m.docStyle.GetFrameSize()
		m.vehicleList.SetSize(msg.Width-h, msg.Height-v-helpStatusHeightOffset)
		m.maintenanceList.SetSize(msg.Width-h, msg.Height-v-helpStatusHeightOffset)
		return m, nil

	case clearStatusMsg:
		m.savingStatus = ""
		m.statusTimer = nil
		return m, nil

	case tea.KeyMsg:
		// Выход по Ctrl+C работает из любого места
		if msg.String() == keyCtrlC {
			return m, tea.Quit
		}

	// --- Результаты операций API --- //
	case loginSuccessMsg:
		return m.handleLoginSuccess(msg)

	case LoginError:
		m.loading = false
		m.err = msg.err
		slog.Error("Ошибка входа", "error", msg.err)
		return m, nil

	case registerSuccessMsg:
		m.loading = false
		m.err = nil
		if msg.user != nil {
			slog.Info("Регистрация успешна", "email", msg.user.Email)
		}
		// После регистрации отправляем пользователя на экран входа
		m.state = loginScreen
		m.resetLoginInputs()
		newModel, statusCmd := m.setStatusMessage("Регистрация успешна, выполните вход")
		return newModel, tea.Batch(statusCmd, tea.ClearScreen)

	case RegisterError:
		m.loading = false
		m.err = msg.err
		slog.Error("Ошибка регистрации", "error", msg.err)
		return m, nil

	case vehiclesLoadedMsg:
		m.loading = false
		m.err = nil
		items := make([]list.Item, 0, len(msg.vehicles))
		for _, v := range msg.vehicles {
			items = append(items, vehicleItem{vehicle: v})
		}
		// Полная замена списка данными сервера
		m.vehicleList.SetItems(items)
		m.vehicleList.Title = fmt.Sprintf("Автомобили (%d)", len(items))
		return m, nil

	case VehiclesError:
		m.loading = false
		// Единое сообщение о неудачной загрузке, без деталей сервера
		m.err = errors.New("не удалось получить список автомобилей")
		m.vehicleList.SetItems([]list.Item{})
		m.vehicleList.Title = "Автомобили"
		slog.Error("Ошибка загрузки списка автомобилей", "error", msg.err)
		return m, nil

	case vehicleCreatedMsg:
		m.loading = true
		m.err = nil
		m.fieldErrors = nil
		m.state = vehicleListScreen
		slog.Info("Автомобиль создан", "id", msg.vehicle.ID)
		newModel, statusCmd := m.setStatusMessage("Автомобиль добавлен")
		return newModel, tea.Batch(statusCmd, m.makeFetchVehiclesCmd(), tea.ClearScreen)

	case CreateVehicleError:
		m.loading = false
		m.err = msg.err
		// Ошибки валидации выводим по полям
		var apiErr *api.APIError
		if errors.As(msg.err, &apiErr) {
			m.fieldErrors = apiErr.Fields
		}
		slog.Error("Ошибка создания автомобиля", "error", msg.err)
		return m, nil

	case vehicleUpdatedMsg:
		m.loading = true
		m.err = nil
		m.fieldErrors = nil
		m.selectedVehicle = msg.vehicle
		m.state = vehicleDetailScreen
		slog.Info("Автомобиль обновлен", "id", msg.vehicle.ID)
		newModel, statusCmd := m.setStatusMessage("Изменения сохранены")
		return newModel, tea.Batch(statusCmd, m.makeFetchVehiclesCmd(), tea.ClearScreen)

	case UpdateVehicleError:
		m.loading = false
		m.err = msg.err
		var apiErr *api.APIError
		if errors.As(msg.err, &apiErr) {
			m.fieldErrors = apiErr.Fields
		}
		slog.Error("Ошибка обновления автомобиля", "error", msg.err)
		return m, nil

	case vehicleDeletedMsg:
		m.loading = true
		m.err = nil
		m.confirmDelete = false
		m.selectedVehicle = nil
		m.state = vehicleListScreen
		slog.Info("Автомобиль удален", "id", msg.id)
		newModel, statusCmd := m.setStatusMessage("Автомобиль удален")
		return newModel, tea.Batch(statusCmd, m.makeFetchVehiclesCmd(), tea.ClearScreen)

	case DeleteVehicleError:
		m.loading = false
		m.confirmDelete = false
		m.err = msg.err
		slog.Error("Ошибка удаления автомобиля", "error", msg.err)
		return m, nil

	case maintenanceAddedMsg:
		m.loading = false
		m.err = nil
		m.state = vehicleDetailScreen
		slog.Info("Запись об обслуживании добавлена", "id", msg.record.ID)
		newModel, statusCmd := m.setStatusMessage("Запись об обслуживании добавлена")
		return newModel, tea.Batch(statusCmd, tea.ClearScreen)

	case AddMaintenanceError:
		m.loading = false
		m.err = msg.err
		slog.Error("Ошибка добавления записи об обслуживании", "error", msg.err)
		return m, nil

	case maintenanceHistoryMsg:
		m.loading = false
		m.err = nil
		items := make([]list.Item, 0, len(msg.records))
		for _, r := range msg.records {
			items = append(items, maintenanceItem{record: r})
		}
		m.maintenanceList.SetItems(items)
		m.maintenanceList.Title = fmt.Sprintf("История обслуживания (%d)", len(items))
		return m, nil

	case MaintenanceHistoryError:
		m.loading = false
		m.err = errors.New("не удалось получить историю обслуживания")
		m.maintenanceList.SetItems([]list.Item{})
		slog.Error("Ошибка загрузки истории обслуживания", "error", msg.err)
		return m, nil
	}

	// --- Обработка в зависимости от текущего экрана --- //
	switch m.state {
	case loginRegisterChoiceScreen:
		return m.updateLoginRegisterChoiceScreen(msg)
	case loginScreen:
		return m.updateLoginScreen(msg)
	case registerScreen:
		return m.updateRegisterScreen(msg)
	case vehicleListScreen:
		return m.updateVehicleListScreen(msg)
	case vehicleDetailScreen:
		return m.updateVehicleDetailScreen(msg)
	case vehicleAddScreen:
		return m.updateVehicleAddScreen(msg)
	case vehicleEditScreen:
		return m.updateVehicleEditScreen(msg)
	case maintenanceAddScreen:
		return m.updateMaintenanceAddScreen(msg)
	case maintenanceHistoryScreen:
		return m.updateMaintenanceHistoryScreen(msg)
	}

	return m, nil
}

// handleLoginSuccess сохраняет токен и переводит приложение к списку автомобилей.
func (m *model) handleLoginSuccess(msg loginSuccessMsg) (tea.Model, tea.Cmd) {
	m.loading = true
	m.err = nil
	m.authToken = msg.Token
	m.apiClient.SetAuthToken(msg.Token)

	// Сохраняем токен для восстановления сессии при следующем запуске
	if err := m.tokenStore.Save(msg.Token); err != nil {
		// Вход все равно выполнен, просто сессия не переживет перезапуск
		slog.Error("Не удалось сохранить токен", "error", err)
	}

	m.loginStatus = "Вход выполнен"
	m.state = vehicleListScreen
	slog.Info("Вход выполнен, загружаем список автомобилей")
	return m, tea.Batch(m.makeFetchVehiclesCmd(), tea.ClearScreen)
}

// handleLogout очищает сессию и возвращает на экран выбора входа.
func (m *model) handleLogout() (tea.Model, tea.Cmd) {
	if err := m.tokenStore.Clear(); err != nil {
		slog.Error("Не удалось удалить сохраненный токен", "error", err)
	}
	m.authToken = ""
	m.apiClient.SetAuthToken("")
	m.loginStatus = statusNotLoggedIn
	m.err = nil
	m.loading = false
	m.selectedVehicle = nil
	m.vehicleList.SetItems([]list.Item{})
	m.resetLoginInputs()
	m.state = loginRegisterChoiceScreen
	slog.Info("Выход из аккаунта выполнен")
	return m, tea.ClearScreen
}
