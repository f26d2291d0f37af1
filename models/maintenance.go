package models

// MaintenanceRecord представляет запись о техническом обслуживании.
// Всегда принадлежит конкретному автомобилю (vehicle id в пути запроса).
type MaintenanceRecord struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Date    string `json:"date"` // ISO дата, yyyy-mm-dd
	Mileage int    `json:"mileage"`
	Notes   string `json:"notes"`
}

// AddMaintenanceRequest представляет тело запроса на создание записи ТО.
// Вид работ, дата и пробег обязательны, форма проверяет их до запроса.
type AddMaintenanceRequest struct {
	Type    string `json:"type"`
	Date    string `json:"date"`
	Mileage int    `json:"mileage"`
	Notes   string `json:"notes"`
}
