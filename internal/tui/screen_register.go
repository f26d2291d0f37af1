package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateRegisterScreen обрабатывает ввод данных для регистрации.
func (m *model) updateRegisterScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	registerAction := func() (tea.Model, tea.Cmd) {
		name := m.registerInputs[registerFieldName].Value()
		email := m.registerInputs[registerFieldEmail].Value()
		password := m.registerInputs[registerFieldPassword].Value()

		cmd := m.makeRegisterCmd(name, email, password)
		m.loading = true
		newModel, statusCmd := m.setStatusMessage("Выполняется регистрация...")
		return newModel, tea.Batch(cmd, statusCmd)
	}

	cancelAction := func() (tea.Model, tea.Cmd) {
		m.state = loginRegisterChoiceScreen
		m.err = nil
		m.resetFormInputs(m.registerInputs, &m.registerFocusedField)
		return m, tea.ClearScreen
	}

	return m.handleFormInput(msg, m.registerInputs, &m.registerFocusedField, registerAction, cancelAction)
}

// viewRegisterScreen отображает экран регистрации нового пользователя.
func (m *model) viewRegisterScreen() string {
	labels := []string{"Имя:", "Email:", "Пароль:"}
	return m.viewFormScreen(
		"Регистрация нового пользователя",
		"Enter - далее/отправить, Tab - следующее поле, Esc - назад",
		labels,
		m.registerInputs,
	)
}
