package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// updateMaintenanceHistoryScreen обрабатывает экран истории обслуживания.
// История загружается при входе на экран; клавиша 'r' перезапрашивает ее явно.
func (m *model) updateMaintenanceHistoryScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	m.maintenanceList, cmd = m.maintenanceList.Update(msg)
	cmds = append(cmds, cmd)

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyBack, keyEsc:
			m.err = nil
			m.state = vehicleDetailScreen
			return m, tea.ClearScreen
		case keyRefresh:
			if m.selectedVehicle != nil {
				m.loading = true
				m.err = nil
				slog.Info("Обновление истории обслуживания", "vehicleID", m.selectedVehicle.ID)
				return m, m.makeFetchHistoryCmd(m.selectedVehicle.ID)
			}
		case keyQuit:
			if m.maintenanceList.FilterState() == list.Unfiltered {
				return m, tea.Quit
			}
		}
	}
	return m, tea.Batch(cmds...)
}

// viewMaintenanceHistoryScreen отображает историю обслуживания автомобиля.
func (m *model) viewMaintenanceHistoryScreen() string {
	if len(m.maintenanceList.Items()) == 0 && !m.loading {
		title := m.maintenanceList.Title
		if title == "" {
			title = "История обслуживания"
		}
		return title + "\n\nЗаписей пока нет. Нажмите 'r' для обновления, 'b' для возврата."
	}
	return m.maintenanceList.View()
}
