package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/maynagashev/garagekeeper/internal/api"
	"github.com/maynagashev/garagekeeper/internal/token"
)

// Константы, используемые при инициализации.
const (
	initPasswordCharLimit = 156
	initEmailCharLimit    = 128
	initInputWidth        = 30
	initYearCharLimit     = 4
	initPlateCharLimit    = 16
	initNotesCharLimit    = 512
	initDateCharLimit     = 10 // yyyy-mm-dd
)

// initLoginInputs инициализирует поля для экрана входа.
func initLoginInputs() (textinput.Model, textinput.Model) {
	emailInput := textinput.New()
	emailInput.Placeholder = "Email"
	emailInput.CharLimit = initEmailCharLimit
	emailInput.Width = initInputWidth

	passInput := textinput.New()
	passInput.Placeholder = "Пароль"
	passInput.CharLimit = initPasswordCharLimit
	passInput.Width = initInputWidth
	passInput.EchoMode = textinput.EchoPassword
	return emailInput, passInput
}

// initRegisterInputs инициализирует поля для экрана регистрации.
func initRegisterInputs() []textinput.Model {
	inputs := make([]textinput.Model, numRegisterFields)

	placeholders := map[int]string{
		registerFieldName:     "Имя пользователя",
		registerFieldEmail:    "Email",
		registerFieldPassword: "Пароль",
	}

	for i := 0; i < numRegisterFields; i++ {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = initEmailCharLimit
		inputs[i].Width = initInputWidth
		if i == registerFieldPassword {
			inputs[i].CharLimit = initPasswordCharLimit
			inputs[i].EchoMode = textinput.EchoPassword
		}
	}
	return inputs
}

// initVehicleInputs инициализирует поля формы добавления/редактирования автомобиля.
func initVehicleInputs() []textinput.Model {
	inputs := make([]textinput.Model, numVehicleFields)

	placeholders := map[int]string{
		vehicleFieldMake:         "Toyota",
		vehicleFieldModel:        "Corolla",
		vehicleFieldYear:         "2020",
		vehicleFieldLicensePlate: "А123БВ77",
		vehicleFieldPhoto:        "https://...",
	}

	for i := 0; i < numVehicleFields; i++ {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = initEmailCharLimit
		inputs[i].Width = initInputWidth
	}
	inputs[vehicleFieldYear].CharLimit = initYearCharLimit
	inputs[vehicleFieldLicensePlate].CharLimit = initPlateCharLimit
	return inputs
}

// initMaintenanceInputs инициализирует поля формы записи об обслуживании.
func initMaintenanceInputs() []textinput.Model {
	inputs := make([]textinput.Model, numMaintenanceFields)

	placeholders := map[int]string{
		maintenanceFieldType:    "Замена масла",
		maintenanceFieldDate:    "2025-01-15",
		maintenanceFieldMileage: "85000",
		maintenanceFieldNotes:   "Заметки",
	}

	for i := 0; i < numMaintenanceFields; i++ {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = initEmailCharLimit
		inputs[i].Width = initInputWidth
	}
	inputs[maintenanceFieldDate].CharLimit = initDateCharLimit
	inputs[maintenanceFieldNotes].CharLimit = initNotesCharLimit
	return inputs
}

// initVehicleList инициализирует основной компонент списка автомобилей.
func initVehicleList() list.Model {
	delegate := list.NewDefaultDelegate()
	// Настраиваем цвета для лучшей видимости
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("235"))
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.
		Foreground(lipgloss.Color("245")).
		Background(lipgloss.Color("235"))
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("212")).
		Background(lipgloss.Color("237")).
		BorderLeftForeground(lipgloss.Color("212"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("240")).
		Background(lipgloss.Color("237")).
		BorderLeftForeground(lipgloss.Color("212"))

	l := list.New([]list.Item{}, delegate, defaultListWidth, defaultListHeight)
	l.Title = "Автомобили"
	l.SetShowHelp(false) // Мы переопределяем справку
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	l.Styles.PaginationStyle = list.DefaultStyles().PaginationStyle
	l.Styles.HelpStyle = list.DefaultStyles().HelpStyle
	return l
}

// initMaintenanceList инициализирует список истории ТО.
func initMaintenanceList() list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), defaultListWidth, defaultListHeight)
	l.Title = "История обслуживания"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return l
}

// initDocStyle инициализирует основной стиль документа.
func initDocStyle() lipgloss.Style {
	return lipgloss.NewStyle().Margin(docStyleMarginVertical, docStyleMarginHorizontal)
}

// initHelpTextMap задает строки помощи для каждого экрана.
func initHelpTextMap() map[screenState]string {
	return map[screenState]string{
		loginRegisterChoiceScreen: "(L) Вход | (R) Регистрация | Ctrl+C Выход",
		loginScreen:               "Tab - след. поле, Enter - войти, Esc - назад",
		registerScreen:            "Tab - след. поле, Enter - зарегистрироваться, Esc - назад",
		vehicleListScreen:         "Enter - детали, (a) Добавить, (r) Обновить, Ctrl+L Выйти из аккаунта, (q) Выход",
		vehicleDetailScreen:       "(e) Ред., (d) Удалить, (m) Новое ТО, (h) История ТО, Esc - назад",
		vehicleAddScreen:          "Tab - след. поле, Enter - сохранить, Esc - отмена",
		vehicleEditScreen:         "Tab - след. поле, Enter - сохранить, Esc - отмена",
		maintenanceAddScreen:      "Tab - след. поле, Enter - сохранить, Esc - отмена",
		maintenanceHistoryScreen:  "(r) Обновить, Esc - назад",
	}
}

// initModel создает начальное состояние модели.
func initModel(serverURL string, debugMode bool, apiClient api.Client, tokenStore *token.Store) model {
	loginEmailInput, loginPassInput := initLoginInputs()

	return model{
		state:              loginRegisterChoiceScreen,
		debugMode:          debugMode,
		apiClient:          apiClient,
		tokenStore:         tokenStore,
		serverURL:          serverURL,
		loginStatus:        statusNotLoggedIn,
		loginEmailInput:    loginEmailInput,
		loginPasswordInput: loginPassInput,
		registerInputs:     initRegisterInputs(),
		editInputs:         initVehicleInputs(),
		maintenanceInputs:  initMaintenanceInputs(),
		vehicleList:        initVehicleList(),
		maintenanceList:    initMaintenanceList(),
		docStyle:           initDocStyle(),
		helpTextMap:        initHelpTextMap(),
	}
}
