package models

// User представляет профиль пользователя, возвращаемый сервером.
// Тэги `json` используются для (де)сериализации JSON.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginData представляет полезную нагрузку успешного ответа на вход.
// Токен лежит внутри поля data ответа сервера.
type LoginData struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// RegisterRequest представляет тело запроса на регистрацию.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
