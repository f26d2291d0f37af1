package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/maynagashev/garagekeeper/models"
)

// updateVehicleEditScreen обрабатывает редактирование выбранного автомобиля.
func (m *model) updateVehicleEditScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	submitAction := func() (tea.Model, tea.Cmd) {
		if m.selectedVehicle == nil {
			m.state = vehicleListScreen
			return m, tea.ClearScreen
		}

		makeName, modelName, year, plate, photo, parseErr := m.collectVehicleForm()
		if parseErr != nil {
			m.err = parseErr
			m.fieldErrors = nil
			return m, nil
		}

		// Отправляем только измененные поля (частичное обновление)
		var req models.UpdateVehicleRequest
		changed := false
		if makeName != m.selectedVehicle.Make {
			req.Make = &makeName
			changed = true
		}
		if modelName != m.selectedVehicle.Model {
			req.Model = &modelName
			changed = true
		}
		if year != m.selectedVehicle.Year {
			req.Year = &year
			changed = true
		}
		if plate != m.selectedVehicle.LicensePlate {
			req.LicensePlate = &plate
			changed = true
		}
		currentPhoto := ""
		if m.selectedVehicle.Photo != nil {
			currentPhoto = *m.selectedVehicle.Photo
		}
		if photo != currentPhoto {
			req.Photo = &photo
			changed = true
		}

		if !changed {
			// Нечего сохранять, просто возвращаемся к деталям
			m.state = vehicleDetailScreen
			return m, tea.ClearScreen
		}

		cmd := m.makeUpdateVehicleCmd(m.selectedVehicle.ID, req)
		m.loading = true
		newModel, statusCmd := m.setStatusMessage("Сохранение...")
		return newModel, tea.Batch(cmd, statusCmd)
	}

	cancelAction := func() (tea.Model, tea.Cmd) {
		m.state = vehicleDetailScreen
		m.err = nil
		m.fieldErrors = nil
		return m, tea.ClearScreen
	}

	return m.handleFormInput(msg, m.editInputs, &m.focusedField, submitAction, cancelAction)
}

// viewVehicleEditScreen отображает форму редактирования автомобиля.
func (m *model) viewVehicleEditScreen() string {
	return m.viewFormScreen(
		"Редактирование автомобиля",
		"Enter - далее/сохранить, Tab - следующее поле, Esc - отмена",
		vehicleFormLabels(),
		m.editInputs,
	)
}
