package tui //nolint:testpackage // Тесты в том же пакете для доступа к приватным компонентам

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/garagekeeper/models"
)

func TestMaintenanceAddScreen_Update(t *testing.T) {
	selected := models.Vehicle{ID: 3, Make: "Toyota", Model: "Corolla"}
	enterMsg := tea.KeyMsg{Type: tea.KeyEnter}

	t.Run("ОбязательныеПоляПроверяютсяДоЗапроса", func(t *testing.T) {
		m, mockClient := createTestModel(t)
		m.state = maintenanceAddScreen
		m.selectedVehicle = &selected
		m.prepareMaintenanceForm()
		// Заполнен только вид работ, дата и пробег пустые
		m.maintenanceInputs[maintenanceFieldType].SetValue("Замена масла")
		m.maintenanceFocusedField = maintenanceFieldNotes

		newModel, _ := m.updateMaintenanceAddScreen(enterMsg)

		result := asModel(t, newModel)
		require.Error(t, result.err)
		assert.Contains(t, result.err.Error(), "заполните")
		assert.Equal(t, maintenanceAddScreen, result.state, "Форма остается открытой")
		mockClient.AssertNotCalled(t, "AddMaintenance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ПробегДолженБытьЧислом", func(t *testing.T) {
		m, mockClient := createTestModel(t)
		m.state = maintenanceAddScreen
		m.selectedVehicle = &selected
		m.prepareMaintenanceForm()
		m.maintenanceInputs[maintenanceFieldType].SetValue("Замена масла")
		m.maintenanceInputs[maintenanceFieldDate].SetValue("2025-01-15")
		m.maintenanceInputs[maintenanceFieldMileage].SetValue("много")
		m.maintenanceFocusedField = maintenanceFieldNotes

		newModel, _ := m.updateMaintenanceAddScreen(enterMsg)

		result := asModel(t, newModel)
		require.Error(t, result.err)
		assert.Contains(t, result.err.Error(), "числом")
		mockClient.AssertNotCalled(t, "AddMaintenance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("КорректнаяФормаЗапускаетСохранение", func(t *testing.T) {
		m, _ := createTestModel(t)
		m.state = maintenanceAddScreen
		m.selectedVehicle = &selected
		m.prepareMaintenanceForm()
		m.maintenanceInputs[maintenanceFieldType].SetValue("Замена масла")
		m.maintenanceInputs[maintenanceFieldDate].SetValue("2025-01-15")
		m.maintenanceInputs[maintenanceFieldMileage].SetValue("85000")
		m.maintenanceFocusedField = maintenanceFieldNotes

		newModel, cmd := m.updateMaintenanceAddScreen(enterMsg)

		result := asModel(t, newModel)
		require.NoError(t, result.err)
		assert.True(t, result.loading)
		require.NotNil(t, cmd, "Должна быть возвращена команда сохранения")
	})

	t.Run("ОтменаВозвращаетКДеталям", func(t *testing.T) {
		m, _ := createTestModel(t)
		m.state = maintenanceAddScreen
		m.selectedVehicle = &selected

		newModel, _ := m.updateMaintenanceAddScreen(tea.KeyMsg{Type: tea.KeyEsc})

		result := asModel(t, newModel)
		assert.Equal(t, vehicleDetailScreen, result.state)
	})
}
