package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrAuthorization сигнализирует об ошибке авторизации (401).
var ErrAuthorization = errors.New("ошибка авторизации")

// ErrNetwork сигнализирует, что запрос не дошел до сервера
// или ответ так и не был получен (таймаут, недоступность сервера).
var ErrNetwork = errors.New("сетевая ошибка")

// FieldError описывает ошибку валидации конкретного поля формы.
// Сервер возвращает такой список при создании автомобиля с некорректными данными.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"error"`
}

// APIError представляет ответ сервера с не-2xx статусом.
// Message всегда заполнен (сообщением сервера либо запасным текстом операции),
// Fields заполняется, когда сервер вернул список ошибок по полям.
type APIError struct {
	Status  int
	Message string
	Fields  []FieldError
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap позволяет проверять errors.Is(err, ErrAuthorization) для ответов 401.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrAuthorization
	}
	return nil
}

// envelope — общий конверт ответов сервера: данные в data,
// сообщение об ошибке в message. Message бывает строкой, списком строк
// или списком ошибок по полям, поэтому декодируется отложенно.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
	Err     json.RawMessage `json:"error"`
}

// decodeMessage разбирает поле message во всех формах, которые возвращает сервер.
// Список строк склеивается в одну строку через запятую.
func decodeMessage(raw json.RawMessage) (string, []FieldError) {
	if len(raw) == 0 {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", "), nil
	}

	var fields []FieldError
	if err := json.Unmarshal(raw, &fields); err == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
		}
		return strings.Join(parts, ", "), fields
	}

	return "", nil
}

// newAPIError собирает APIError из тела ответа сервера.
// Если сообщение извлечь не удалось, используется запасной текст операции.
func newAPIError(status int, body []byte, fallback string) *APIError {
	apiErr := &APIError{Status: status, Message: fallback}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apiErr
	}

	msg, fields := decodeMessage(env.Message)
	if msg == "" && len(fields) == 0 {
		// Некоторые эндпоинты кладут текст в поле error вместо message.
		msg, fields = decodeMessage(env.Err)
	}
	if msg != "" {
		apiErr.Message = msg
	}
	apiErr.Fields = fields
	return apiErr
}
