package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// viewCredentialsScreen отображает общий экран ввода данных (email/пароль).
func (m *model) viewCredentialsScreen(title, hint string, emailInput, passwordInput textinput.Model) string {
	var b strings.Builder

	// Определяем стили здесь, чтобы избежать дублирования в каждом вызывающем месте
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))    // Серый
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94")) // Красный для ошибок

	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(emailInput.View() + "\n")
	b.WriteString(passwordInput.View() + "\n\n")
	b.WriteString(subtleStyle.Render(hint) + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Ошибка: "+m.err.Error()) + "\n")
	}
	return b.String()
}

// viewFormScreen отображает общий экран формы с произвольным числом полей.
// Под формой выводятся ошибки валидации по полям и общая ошибка.
func (m *model) viewFormScreen(title, hint string, labels []string, inputs []textinput.Model) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))

	b.WriteString(titleStyle.Render(title) + "\n\n")
	for i := range inputs {
		if i < len(labels) {
			b.WriteString(labelStyle.Render(labels[i]) + "\n")
		}
		b.WriteString(inputs[i].View() + "\n")
	}
	b.WriteString("\n" + subtleStyle.Render(hint) + "\n")

	// Ошибки валидации по полям от сервера
	for _, fe := range m.fieldErrors {
		b.WriteString(errorStyle.Render(fe.Field+": "+fe.Message) + "\n")
	}
	if m.err != nil && len(m.fieldErrors) == 0 {
		b.WriteString(errorStyle.Render("Ошибка: "+m.err.Error()) + "\n")
	}
	return b.String()
}
