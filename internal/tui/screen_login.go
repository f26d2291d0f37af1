package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateLoginScreen обрабатывает ввод данных для входа.
func (m *model) updateLoginScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	loginAction := func() (tea.Model, tea.Cmd) {
		email := m.loginEmailInput.Value()
		password := m.loginPasswordInput.Value()
		// Вызываем команду для выполнения входа
		cmd := m.makeLoginCmd(email, password)
		m.loading = true
		newModel, statusCmd := m.setStatusMessage("Выполняется вход...")
		return newModel, tea.Batch(cmd, statusCmd)
	}

	return m.handleCredentialsInput(
		msg,
		&m.loginEmailInput,
		&m.loginPasswordInput,
		&m.loginFocusedField,
		loginAction,
		loginRegisterChoiceScreen, // Возвращаемся к выбору при Esc
	)
}

// viewLoginScreen отображает экран ввода данных для входа.
func (m *model) viewLoginScreen() string {
	// Используем общую функцию
	return m.viewCredentialsScreen(
		"Вход в учетную запись",
		"Нажмите Enter для входа, Esc для возврата",
		m.loginEmailInput,
		m.loginPasswordInput,
	)
}
