package models

// Vehicle представляет автомобиль пользователя.
// Идентификатор назначается сервером при создании, клиент никогда
// не придумывает id сам.
type Vehicle struct {
	ID           int64   `json:"id"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	LicensePlate string  `json:"licensePlate"`
	Photo        *string `json:"photo"`
}

// CreateVehicleRequest представляет тело запроса на создание автомобиля.
type CreateVehicleRequest struct {
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	LicensePlate string  `json:"licensePlate"`
	Photo        *string `json:"photo"`
}

// UpdateVehicleRequest представляет частичное обновление автомобиля.
// Отправляются только заполненные поля (nil-поля опускаются при маршалинге),
// остальные значения на сервере не меняются.
type UpdateVehicleRequest struct {
	Make         *string `json:"make,omitempty"`
	Model        *string `json:"model,omitempty"`
	Year         *int    `json:"year,omitempty"`
	LicensePlate *string `json:"licensePlate,omitempty"`
	Photo        *string `json:"photo,omitempty"`
}
