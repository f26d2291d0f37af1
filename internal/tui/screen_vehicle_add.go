package tui

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maynagashev/garagekeeper/models"
)

// prepareVehicleForm заполняет форму автомобиля. При nil форма очищается
// (добавление), иначе поля заполняются текущими значениями (редактирование).
func (m *model) prepareVehicleForm(v *models.Vehicle) {
	m.resetFormInputs(m.editInputs, &m.focusedField)
	m.err = nil
	m.fieldErrors = nil
	if v == nil {
		return
	}
	m.editInputs[vehicleFieldMake].SetValue(v.Make)
	m.editInputs[vehicleFieldModel].SetValue(v.Model)
	m.editInputs[vehicleFieldYear].SetValue(strconv.Itoa(v.Year))
	m.editInputs[vehicleFieldLicensePlate].SetValue(v.LicensePlate)
	if v.Photo != nil {
		m.editInputs[vehicleFieldPhoto].SetValue(*v.Photo)
	}
}

// collectVehicleForm считывает значения формы и разбирает год выпуска.
func (m *model) collectVehicleForm() (makeName, modelName string, year int, plate, photo string, err error) {
	makeName = m.editInputs[vehicleFieldMake].Value()
	modelName = m.editInputs[vehicleFieldModel].Value()
	plate = m.editInputs[vehicleFieldLicensePlate].Value()
	photo = m.editInputs[vehicleFieldPhoto].Value()

	yearStr := m.editInputs[vehicleFieldYear].Value()
	if yearStr != "" {
		year, err = strconv.Atoi(yearStr)
		if err != nil {
			err = errors.New("год выпуска должен быть числом")
		}
	}
	return makeName, modelName, year, plate, photo, err
}

// updateVehicleAddScreen обрабатывает ввод данных нового автомобиля.
func (m *model) updateVehicleAddScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	submitAction := func() (tea.Model, tea.Cmd) {
		makeName, modelName, year, plate, photo, parseErr := m.collectVehicleForm()
		if parseErr != nil {
			m.err = parseErr
			m.fieldErrors = nil
			return m, nil
		}

		req := models.CreateVehicleRequest{
			Make:         makeName,
			Model:        modelName,
			Year:         year,
			LicensePlate: plate,
		}
		if photo != "" {
			req.Photo = &photo
		}

		cmd := m.makeCreateVehicleCmd(req)
		m.loading = true
		newModel, statusCmd := m.setStatusMessage("Сохранение...")
		return newModel, tea.Batch(cmd, statusCmd)
	}

	cancelAction := func() (tea.Model, tea.Cmd) {
		m.state = vehicleListScreen
		m.err = nil
		m.fieldErrors = nil
		return m, tea.ClearScreen
	}

	return m.handleFormInput(msg, m.editInputs, &m.focusedField, submitAction, cancelAction)
}

// viewVehicleAddScreen отображает форму добавления автомобиля.
func (m *model) viewVehicleAddScreen() string {
	return m.viewFormScreen(
		"Новый автомобиль",
		"Enter - далее/сохранить, Tab - следующее поле, Esc - отмена",
		vehicleFormLabels(),
		m.editInputs,
	)
}

func vehicleFormLabels() []string {
	return []string{
		"Марка:",
		"Модель:",
		fmt.Sprintf("Год выпуска (например, %d):", defaultVehicleYear),
		"Гос. номер:",
		"Фото (URL, необязательно):",
	}
}
