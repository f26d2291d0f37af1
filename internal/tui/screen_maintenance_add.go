package tui

import (
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maynagashev/garagekeeper/models"
)

// prepareMaintenanceForm очищает форму записи об обслуживании.
func (m *model) prepareMaintenanceForm() {
	m.resetFormInputs(m.maintenanceInputs, &m.maintenanceFocusedField)
	m.err = nil
	m.fieldErrors = nil
}

// updateMaintenanceAddScreen обрабатывает добавление записи об обслуживании.
func (m *model) updateMaintenanceAddScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	submitAction := func() (tea.Model, tea.Cmd) {
		if m.selectedVehicle == nil {
			m.state = vehicleListScreen
			return m, tea.ClearScreen
		}

		maintType := m.maintenanceInputs[maintenanceFieldType].Value()
		date := m.maintenanceInputs[maintenanceFieldDate].Value()
		mileageStr := m.maintenanceInputs[maintenanceFieldMileage].Value()
		notes := m.maintenanceInputs[maintenanceFieldNotes].Value()

		// Обязательные поля проверяем до обращения к серверу
		if maintType == "" || date == "" || mileageStr == "" {
			m.err = errors.New("заполните вид работ, дату и пробег")
			return m, nil
		}
		mileage, parseErr := strconv.Atoi(mileageStr)
		if parseErr != nil {
			m.err = errors.New("пробег должен быть числом")
			return m, nil
		}

		req := models.AddMaintenanceRequest{
			Type:    maintType,
			Date:    date,
			Mileage: mileage,
			Notes:   notes,
		}

		cmd := m.makeAddMaintenanceCmd(m.selectedVehicle.ID, req)
		m.loading = true
		newModel, statusCmd := m.setStatusMessage("Сохранение записи...")
		return newModel, tea.Batch(cmd, statusCmd)
	}

	cancelAction := func() (tea.Model, tea.Cmd) {
		m.state = vehicleDetailScreen
		m.err = nil
		return m, tea.ClearScreen
	}

	return m.handleFormInput(msg, m.maintenanceInputs, &m.maintenanceFocusedField, submitAction, cancelAction)
}

// viewMaintenanceAddScreen отображает форму добавления записи об обслуживании.
func (m *model) viewMaintenanceAddScreen() string {
	labels := []string{
		"Вид работ:",
		"Дата (ГГГГ-ММ-ДД):",
		"Пробег, км:",
		"Заметки (необязательно):",
	}
	title := "Новая запись об обслуживании"
	if m.selectedVehicle != nil {
		title += ": " + m.selectedVehicle.Make + " " + m.selectedVehicle.Model
	}
	return m.viewFormScreen(
		title,
		"Enter - далее/сохранить, Tab - следующее поле, Esc - отмена",
		labels,
		m.maintenanceInputs,
	)
}
