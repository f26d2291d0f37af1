package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/maynagashev/garagekeeper/internal/api"
	"github.com/maynagashev/garagekeeper/internal/token"
	"github.com/maynagashev/garagekeeper/models"
)

// Состояния (экраны) приложения.
type screenState int

const (
	loginRegisterChoiceScreen screenState = iota // Экран выбора "Войти или Зарегистрироваться?"
	loginScreen                                  // Экран ввода данных для входа
	registerScreen                               // Экран ввода данных для регистрации
	vehicleListScreen                            // Экран списка автомобилей
	vehicleDetailScreen                          // Экран деталей автомобиля
	vehicleAddScreen                             // Экран добавления автомобиля
	vehicleEditScreen                            // Экран редактирования автомобиля
	maintenanceAddScreen                         // Экран добавления записи ТО
	maintenanceHistoryScreen                     // Экран истории ТО автомобиля
)

// String возвращает имя состояния для логов и отладочного подвала.
func (s screenState) String() string {
	switch s {
	case loginRegisterChoiceScreen:
		return "loginRegisterChoice"
	case loginScreen:
		return "login"
	case registerScreen:
		return "register"
	case vehicleListScreen:
		return "vehicleList"
	case vehicleDetailScreen:
		return "vehicleDetail"
	case vehicleAddScreen:
		return "vehicleAdd"
	case vehicleEditScreen:
		return "vehicleEdit"
	case maintenanceAddScreen:
		return "maintenanceAdd"
	case maintenanceHistoryScreen:
		return "maintenanceHistory"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Поля формы автомобиля (добавление и редактирование).
const (
	vehicleFieldMake = iota
	vehicleFieldModel
	vehicleFieldYear
	vehicleFieldLicensePlate
	vehicleFieldPhoto
	numVehicleFields // Общее количество полей формы автомобиля
)

// Поля формы записи ТО.
const (
	maintenanceFieldType = iota
	maintenanceFieldDate
	maintenanceFieldMileage
	maintenanceFieldNotes
	numMaintenanceFields
)

// Поля формы регистрации.
const (
	registerFieldName = iota
	registerFieldEmail
	registerFieldPassword
	numRegisterFields
)

// Константы для TUI.
const (
	defaultListWidth  = 80 // Стандартная ширина терминала для списка
	defaultListHeight = 24 // Стандартная высота терминала для списка

	defaultVehicleYear = 2020 // Год для подсказки в форме

	keyEnter    = "enter"  // Клавиша Enter
	keyCtrlC    = "ctrl+c" // Глобальный выход
	keyQuit     = "q"     // Клавиша выхода
	keyBack     = "b"     // Клавиша возврата
	keyEsc      = "esc"   // Клавиша Escape
	keyEdit     = "e"     // Клавиша редактирования
	keyAdd      = "a"     // Клавиша добавления
	keyDelete   = "d"     // Клавиша удаления
	keyRefresh  = "r"     // Клавиша обновления списка
	keyHistory  = "h"     // Клавиша перехода к истории ТО
	keyMaint    = "m"     // Клавиша добавления записи ТО
	keyLogout   = "ctrl+l"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyUp       = "up"
	keyDown     = "down"
)

// vehicleItem представляет элемент списка автомобилей.
// Реализует интерфейс list.Item.
type vehicleItem struct {
	vehicle models.Vehicle
}

func (i vehicleItem) Title() string {
	return fmt.Sprintf("%s %s (%d)", i.vehicle.Make, i.vehicle.Model, i.vehicle.Year)
}

func (i vehicleItem) Description() string {
	desc := "Гос. номер: " + i.vehicle.LicensePlate
	if i.vehicle.Photo != nil && *i.vehicle.Photo != "" {
		desc += " [фото]"
	}
	return desc
}

func (i vehicleItem) FilterValue() string { return i.Title() }

// maintenanceItem представляет элемент списка истории ТО.
type maintenanceItem struct {
	record models.MaintenanceRecord
}

func (i maintenanceItem) Title() string {
	return fmt.Sprintf("%s — %s", i.record.Type, i.record.Date)
}

func (i maintenanceItem) Description() string {
	desc := fmt.Sprintf("Пробег: %d", i.record.Mileage)
	if i.record.Notes != "" {
		desc += " | " + i.record.Notes
	}
	return desc
}

func (i maintenanceItem) FilterValue() string { return i.Title() }

// model представляет состояние TUI приложения.
type model struct {
	state     screenState
	debugMode bool // Флаг: показывать отладочный подвал

	// -- Интеграция с сервером --
	apiClient   api.Client   // Клиент для взаимодействия с API
	tokenStore  *token.Store // Персистентное хранилище токена сессии
	serverURL   string       // URL сервера
	authToken   string       // Bearer токен текущей сессии
	loginStatus string       // Статус входа ("Не выполнен", "Вход выполнен...")

	// -- Состояние текущей операции (Idle -> Loading -> Success/Failed) --
	loading     bool             // Идет сетевая операция; блокирует повторную отправку форм
	err         error            // Последняя ошибка для отображения
	fieldErrors []api.FieldError // Ошибки валидации по полям (создание автомобиля)

	savingStatus string      // Статусное сообщение (отображается внизу)
	statusTimer  *time.Timer // Таймер для очистки статусного сообщения

	// -- Экран входа --
	loginEmailInput    textinput.Model
	loginPasswordInput textinput.Model
	loginFocusedField  int // 0 — email, 1 — пароль

	// -- Экран регистрации --
	registerInputs       []textinput.Model // Имя, email, пароль
	registerFocusedField int

	// -- Автомобили --
	vehicleList     list.Model      // Список автомобилей
	selectedVehicle *models.Vehicle // Выбранный автомобиль для просмотра/редактирования
	editInputs      []textinput.Model
	focusedField    int  // Индекс активного поля при добавлении/редактировании
	confirmDelete   bool // Флаг: ожидается подтверждение удаления автомобиля

	// -- Техническое обслуживание --
	maintenanceList         list.Model        // История ТО выбранного автомобиля
	maintenanceInputs       []textinput.Model // Поля формы добавления записи ТО
	maintenanceFocusedField int

	docStyle    lipgloss.Style         // Общий стиль для обрамления View
	helpTextMap map[screenState]string // Строки помощи по экранам
}

// Сообщение для очистки статуса.
type clearStatusMsg struct{}
