package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateVehicleDetailScreen обрабатывает сообщения для экрана деталей автомобиля.
func (m *model) updateVehicleDetailScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Ожидание подтверждения удаления обрабатываем отдельно
	if m.confirmDelete {
		switch keyMsg.String() {
		case "y", "Y":
			if m.selectedVehicle != nil {
				m.loading = true
				slog.Info("Удаление автомобиля подтверждено", "id", m.selectedVehicle.ID)
				return m, m.makeDeleteVehicleCmd(m.selectedVehicle.ID)
			}
			m.confirmDelete = false
			return m, nil
		default:
			// Любая другая клавиша отменяет удаление
			m.confirmDelete = false
			return m, nil
		}
	}

	switch keyMsg.String() {
	case keyBack, keyEsc:
		m.selectedVehicle = nil
		m.err = nil
		m.state = vehicleListScreen
		return m, tea.ClearScreen
	case keyEdit:
		if m.selectedVehicle != nil {
			m.prepareVehicleForm(m.selectedVehicle)
			m.state = vehicleEditScreen
			slog.Info("Переход к редактированию автомобиля", "id", m.selectedVehicle.ID)
			return m, tea.Batch(textinput.Blink, tea.ClearScreen)
		}
	case keyDelete:
		if m.selectedVehicle != nil {
			m.confirmDelete = true
		}
		return m, nil
	case keyMaint:
		if m.selectedVehicle != nil {
			m.prepareMaintenanceForm()
			m.state = maintenanceAddScreen
			slog.Info("Переход к добавлению записи об обслуживании", "vehicleID", m.selectedVehicle.ID)
			return m, tea.Batch(textinput.Blink, tea.ClearScreen)
		}
	case keyHistory:
		if m.selectedVehicle != nil {
			// Историю загружаем при входе на экран
			m.loading = true
			m.err = nil
			m.maintenanceList.Title = "История обслуживания"
			m.maintenanceList.SetItems(nil)
			m.state = maintenanceHistoryScreen
			slog.Info("Переход к истории обслуживания", "vehicleID", m.selectedVehicle.ID)
			return m, tea.Batch(m.makeFetchHistoryCmd(m.selectedVehicle.ID), tea.ClearScreen)
		}
	case keyQuit:
		return m, tea.Quit
	}
	return m, nil
}

// viewVehicleDetailScreen отображает детали выбранного автомобиля.
func (m *model) viewVehicleDetailScreen() string {
	if m.selectedVehicle == nil {
		return "Автомобиль не выбран"
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F25D94"))
	warnStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))

	v := m.selectedVehicle
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", v.Make, v.Model)) + "\n\n")
	b.WriteString(labelStyle.Render("Марка: ") + v.Make + "\n")
	b.WriteString(labelStyle.Render("Модель: ") + v.Model + "\n")
	b.WriteString(labelStyle.Render("Год выпуска: ") + fmt.Sprintf("%d", v.Year) + "\n")
	b.WriteString(labelStyle.Render("Гос. номер: ") + v.LicensePlate + "\n")
	if v.Photo != nil && *v.Photo != "" {
		b.WriteString(labelStyle.Render("Фото: ") + *v.Photo + "\n")
	}

	if m.confirmDelete {
		b.WriteString("\n" + warnStyle.Render("Удалить автомобиль? (y - да, любая клавиша - отмена)") + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.err.Error()) + "\n")
	}
	return b.String()
}
