package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/maynagashev/garagekeeper/models"
)

// clearStatusCmd возвращает команду, которая отправит clearStatusMsg через delay.
func clearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// --- Сообщения и команды для входа/регистрации --- //

type loginSuccessMsg struct {
	Token string
}

type LoginError struct {
	err error
}

func (e LoginError) Error() string {
	return e.err.Error()
}

// makeLoginCmd выполняет вход через API.
func (m *model) makeLoginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		token, err := m.apiClient.Login(ctx, email, password)
		if err != nil {
			// Возвращаем исходную ошибку API клиента без добавления контекста
			return LoginError{err: err}
		}
		return loginSuccessMsg{Token: token}
	}
}

type registerSuccessMsg struct {
	user *models.User
}

type RegisterError struct {
	err error
}

func (e RegisterError) Error() string {
	return e.err.Error()
}

// makeRegisterCmd выполняет регистрацию через API.
func (m *model) makeRegisterCmd(name, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		user, err := m.apiClient.Register(ctx, name, email, password)
		if err != nil {
			return RegisterError{err: err}
		}
		return registerSuccessMsg{user: user}
	}
}

// --- Сообщения и команды для автомобилей --- //

// vehiclesLoadedMsg содержит полный снимок списка автомобилей с сервера.
type vehiclesLoadedMsg struct {
	vehicles []models.Vehicle
}

type VehiclesError struct {
	err error
}

func (e VehiclesError) Error() string {
	return e.err.Error()
}

// makeFetchVehiclesCmd загружает список автомобилей.
func (m *model) makeFetchVehiclesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		vehicles, err := m.apiClient.ListVehicles(ctx)
		if err != nil {
			return VehiclesError{err: err}
		}
		return vehiclesLoadedMsg{vehicles: vehicles}
	}
}

type vehicleCreatedMsg struct {
	vehicle *models.Vehicle
}

type CreateVehicleError struct {
	err error
}

func (e CreateVehicleError) Error() string {
	return e.err.Error()
}

// makeCreateVehicleCmd создает автомобиль через API.
func (m *model) makeCreateVehicleCmd(req models.CreateVehicleRequest) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		vehicle, err := m.apiClient.CreateVehicle(ctx, req)
		if err != nil {
			return CreateVehicleError{err: err}
		}
		return vehicleCreatedMsg{vehicle: vehicle}
	}
}

type vehicleUpdatedMsg struct {
	vehicle *models.Vehicle
}

type UpdateVehicleError struct {
	err error
}

func (e UpdateVehicleError) Error() string {
	return e.err.Error()
}

// makeUpdateVehicleCmd частично обновляет автомобиль через API.
func (m *model) makeUpdateVehicleCmd(id int64, req models.UpdateVehicleRequest) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		vehicle, err := m.apiClient.UpdateVehicle(ctx, id, req)
		if err != nil {
			return UpdateVehicleError{err: err}
		}
		return vehicleUpdatedMsg{vehicle: vehicle}
	}
}

type vehicleDeletedMsg struct {
	id int64
}

type DeleteVehicleError struct {
	err error
}

func (e DeleteVehicleError) Error() string {
	return e.err.Error()
}

// makeDeleteVehicleCmd удаляет автомобиль через API.
// Ошибка любого вида сводится к неуспеху операции, без классификации.
func (m *model) makeDeleteVehicleCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.apiClient.DeleteVehicle(ctx, id); err != nil {
			return DeleteVehicleError{err: err}
		}
		return vehicleDeletedMsg{id: id}
	}
}

// --- Сообщения и команды для ТО --- //

type maintenanceAddedMsg struct {
	record *models.MaintenanceRecord
}

type AddMaintenanceError struct {
	err error
}

func (e AddMaintenanceError) Error() string {
	return e.err.Error()
}

// makeAddMaintenanceCmd создает запись о ТО через API.
func (m *model) makeAddMaintenanceCmd(vehicleID int64, req models.AddMaintenanceRequest) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		record, err := m.apiClient.AddMaintenance(ctx, vehicleID, req)
		if err != nil {
			return AddMaintenanceError{err: err}
		}
		return maintenanceAddedMsg{record: record}
	}
}

// maintenanceHistoryMsg содержит историю ТО автомобиля.
type maintenanceHistoryMsg struct {
	records []models.MaintenanceRecord
}

type MaintenanceHistoryError struct {
	err error
}

func (e MaintenanceHistoryError) Error() string {
	return e.err.Error()
}

// makeFetchHistoryCmd загружает историю ТО. Загрузка выполняется только
// по явному действию (вход на экран, клавиша обновления), а без токена
// или без id автомобиля запрос не выполняется вовсе: ни данных, ни ошибки.
func (m *model) makeFetchHistoryCmd(vehicleID int64) tea.Cmd {
	authToken := m.authToken
	return func() tea.Msg {
		if vehicleID == 0 || authToken == "" {
			slog.Debug("Загрузка истории ТО пропущена", "vehicle_id", vehicleID, "token_set", authToken != "")
			return maintenanceHistoryMsg{records: nil}
		}
		ctx := context.Background()
		records, err := m.apiClient.MaintenanceHistory(ctx, vehicleID)
		if err != nil {
			return MaintenanceHistoryError{err: err}
		}
		return maintenanceHistoryMsg{records: records}
	}
}
