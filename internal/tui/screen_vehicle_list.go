package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// updateVehicleListScreen обрабатывает сообщения для экрана списка автомобилей.
func (m *model) updateVehicleListScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	// Сначала обновляем список
	m.vehicleList, cmd = m.vehicleList.Update(msg)
	cmds = append(cmds, cmd)

	// Обработка клавиш для экрана списка
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit:
			// Выход по 'q', если не активен режим фильтрации
			if m.vehicleList.FilterState() == list.Unfiltered {
				return m, tea.Quit
			}
		case keyEnter:
			selectedItem := m.vehicleList.SelectedItem()
			if selectedItem != nil {
				if item, isVehicleItem := selectedItem.(vehicleItem); isVehicleItem {
					vehicle := item.vehicle
					m.selectedVehicle = &vehicle
					m.confirmDelete = false
					m.err = nil
					m.state = vehicleDetailScreen
					slog.Info("Переход к деталям автомобиля", "id", vehicle.ID)
					cmds = append(cmds, tea.ClearScreen)
				}
			}
		case keyAdd:
			// Переход к добавлению нового автомобиля
			m.prepareVehicleForm(nil)
			m.state = vehicleAddScreen
			slog.Info("Переход к добавлению автомобиля")
			return m, tea.Batch(textinput.Blink, tea.ClearScreen)
		case keyRefresh:
			m.loading = true
			m.err = nil
			slog.Info("Обновление списка автомобилей")
			return m, m.makeFetchVehiclesCmd()
		case keyLogout:
			return m.handleLogout()
		}
	}
	return m, tea.Batch(cmds...)
}

// viewVehicleListScreen отображает экран списка автомобилей.
func (m *model) viewVehicleListScreen() string {
	return m.vehicleList.View()
}
