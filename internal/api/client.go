package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/maynagashev/garagekeeper/models"
)

// Префикс всех эндпоинтов сервера.
const apiPrefix = "/api/v1"

// Client определяет интерфейс для взаимодействия с API сервера учета ТО.
type Client interface {
	// Login аутентифицирует пользователя и возвращает bearer токен.
	// Токен НЕ сохраняется на диск — за персистентность отвечает вызывающая сторона.
	Login(ctx context.Context, email, password string) (string, error)
	// Register регистрирует нового пользователя и возвращает созданный профиль.
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	// ListVehicles возвращает все автомобили текущей сессии.
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	// CreateVehicle создает новый автомобиль.
	CreateVehicle(ctx context.Context, req models.CreateVehicleRequest) (*models.Vehicle, error)
	// UpdateVehicle частично обновляет автомобиль: отправляются только заполненные поля.
	UpdateVehicle(ctx context.Context, id int64, req models.UpdateVehicleRequest) (*models.Vehicle, error)
	// DeleteVehicle удаляет автомобиль по id.
	DeleteVehicle(ctx context.Context, id int64) error
	// AddMaintenance создает запись о ТО для автомобиля.
	AddMaintenance(ctx context.Context, vehicleID int64, req models.AddMaintenanceRequest) (*models.MaintenanceRecord, error)
	// MaintenanceHistory возвращает историю ТО автомобиля.
	MaintenanceHistory(ctx context.Context, vehicleID int64) ([]models.MaintenanceRecord, error)
	// SetAuthToken устанавливает bearer токен для аутентифицированных запросов.
	SetAuthToken(token string)
}

// httpClient реализует интерфейс Client поверх HTTP/JSON.
type httpClient struct {
	baseURL    string       // Базовый URL сервера, например "https://example.com"
	httpClient *http.Client // HTTP клиент для выполнения запросов
	authToken  string       // Bearer токен для аутентифицированных запросов
}

// NewHTTPClient создает новый экземпляр API клиента.
func NewHTTPClient(baseURL string) Client {
	return &httpClient{
		baseURL:    baseURL,
		httpClient: &http.Client{}, // Таймаут по умолчанию от транспорта, дедлайн не устанавливаем
	}
}

// SetAuthToken устанавливает токен аутентификации для клиента.
func (c *httpClient) SetAuthToken(token string) {
	c.authToken = token
}

// setAuthHeader добавляет заголовок авторизации к запросу.
func (c *httpClient) setAuthHeader(req *http.Request) error {
	if c.authToken == "" {
		return errors.New("токен аутентификации отсутствует")
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	return nil
}

// doRequest выполняет один JSON запрос к серверу и возвращает статус и тело ответа.
// Content-Type ставится только при наличии тела, Authorization — только для
// защищенных эндпоинтов (withAuth). Запрос не ретраится и не кэшируется.
func (c *httpClient) doRequest(
	ctx context.Context,
	method, path string,
	body any,
	withAuth bool,
) (int, []byte, error) {
	requestURL, err := url.JoinPath(c.baseURL, apiPrefix, path)
	if err != nil {
		return 0, nil, fmt.Errorf("ошибка формирования URL запроса: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, errMarshal := json.Marshal(body)
		if errMarshal != nil {
			return 0, nil, fmt.Errorf("ошибка кодирования тела запроса: %w", errMarshal)
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth {
		if err = c.setAuthHeader(req); err != nil {
			return 0, nil, err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Запрос не дошел до сервера или ответ не получен
		return 0, nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: ошибка чтения ответа: %w", ErrNetwork, err)
	}

	return resp.StatusCode, respBody, nil
}

// decodeData извлекает полезную нагрузку из конверта {data: ...}.
func decodeData(body []byte, target any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("ошибка декодирования ответа: %w", err)
	}
	if len(env.Data) == 0 {
		return errors.New("сервер вернул пустой ответ")
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("ошибка декодирования данных ответа: %w", err)
	}
	return nil
}

// is2xx сообщает, является ли статус успешным.
func is2xx(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// Login отправляет запрос на вход и сохраняет токен в клиенте.
func (c *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	requestBody := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	status, body, err := c.doRequest(ctx, http.MethodPost, "/auth/login", requestBody, false)
	if err != nil {
		return "", fmt.Errorf("ошибка выполнения запроса на вход: %w", err)
	}

	if status != http.StatusOK {
		return "", newAPIError(status, body, "произошла ошибка")
	}

	var data models.LoginData
	if err = decodeData(body, &data); err != nil {
		return "", fmt.Errorf("ошибка декодирования ответа на вход: %w", err)
	}
	if data.AccessToken == "" {
		return "", errors.New("сервер вернул пустой токен")
	}

	// Сохраняем токен в клиенте для последующих запросов
	c.authToken = data.AccessToken

	return data.AccessToken, nil
}

// Register отправляет запрос на регистрацию нового пользователя.
func (c *httpClient) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	requestBody := models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}

	status, body, err := c.doRequest(ctx, http.MethodPost, "/auth/register", requestBody, false)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на регистрацию: %w", err)
	}

	if !is2xx(status) {
		// message может быть списком — newAPIError склеит его в одну строку
		return nil, newAPIError(status, body, "не удалось зарегистрироваться")
	}

	var user models.User
	if err = decodeData(body, &user); err != nil {
		return nil, fmt.Errorf("ошибка декодирования ответа на регистрацию: %w", err)
	}

	return &user, nil
}

// ListVehicles возвращает полный снимок списка автомобилей с сервера.
func (c *httpClient) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	status, body, err := c.doRequest(ctx, http.MethodGet, "/vehicles", nil, true)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса списка автомобилей: %w", err)
	}

	if status != http.StatusOK {
		return nil, newAPIError(status, body, "не удалось получить список автомобилей")
	}

	var vehicles []models.Vehicle
	if err = decodeData(body, &vehicles); err != nil {
		return nil, fmt.Errorf("ошибка декодирования списка автомобилей: %w", err)
	}

	return vehicles, nil
}

// CreateVehicle создает автомобиль. При ошибке валидации возвращаемый
// *APIError содержит список ошибок по полям для отрисовки формы.
func (c *httpClient) CreateVehicle(
	ctx context.Context,
	req models.CreateVehicleRequest,
) (*models.Vehicle, error) {
	status, body, err := c.doRequest(ctx, http.MethodPost, "/vehicles", req, true)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на создание автомобиля: %w", err)
	}

	if !is2xx(status) {
		return nil, newAPIError(status, body, "произошла ошибка")
	}

	var vehicle models.Vehicle
	if err = decodeData(body, &vehicle); err != nil {
		return nil, fmt.Errorf("ошибка декодирования созданного автомобиля: %w", err)
	}

	return &vehicle, nil
}

// UpdateVehicle частично обновляет автомобиль.
func (c *httpClient) UpdateVehicle(
	ctx context.Context,
	id int64,
	req models.UpdateVehicleRequest,
) (*models.Vehicle, error) {
	path := "/vehicles/" + strconv.FormatInt(id, 10)
	status, body, err := c.doRequest(ctx, http.MethodPatch, path, req, true)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на обновление автомобиля: %w", err)
	}

	if !is2xx(status) {
		return nil, newAPIError(status, body, "что-то пошло не так, попробуйте позже")
	}

	// Эндпоинт обновления возвращает объект автомобиля без конверта data
	var vehicle models.Vehicle
	if err = json.Unmarshal(body, &vehicle); err != nil {
		return nil, fmt.Errorf("ошибка декодирования обновленного автомобиля: %w", err)
	}

	return &vehicle, nil
}

// DeleteVehicle удаляет автомобиль. Успехом считается только статус 200.
func (c *httpClient) DeleteVehicle(ctx context.Context, id int64) error {
	path := "/vehicles/" + strconv.FormatInt(id, 10)
	status, body, err := c.doRequest(ctx, http.MethodDelete, path, nil, true)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса на удаление автомобиля: %w", err)
	}

	if status != http.StatusOK {
		return newAPIError(status, body, fmt.Sprintf("не удалось удалить автомобиль: статус %d", status))
	}

	return nil
}

// AddMaintenance создает запись о ТО. Успехом считается только статус 201.
func (c *httpClient) AddMaintenance(
	ctx context.Context,
	vehicleID int64,
	req models.AddMaintenanceRequest,
) (*models.MaintenanceRecord, error) {
	path := "/vehicles/" + strconv.FormatInt(vehicleID, 10) + "/maintenance"
	status, body, err := c.doRequest(ctx, http.MethodPost, path, req, true)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на создание записи ТО: %w", err)
	}

	if status != http.StatusCreated {
		return nil, newAPIError(status, body, "произошла ошибка")
	}

	var record models.MaintenanceRecord
	if err = decodeData(body, &record); err != nil {
		return nil, fmt.Errorf("ошибка декодирования созданной записи ТО: %w", err)
	}

	return &record, nil
}

// MaintenanceHistory возвращает историю ТО автомобиля.
func (c *httpClient) MaintenanceHistory(
	ctx context.Context,
	vehicleID int64,
) ([]models.MaintenanceRecord, error) {
	path := "/vehicles/" + strconv.FormatInt(vehicleID, 10) + "/maintenance"
	status, body, err := c.doRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса истории ТО: %w", err)
	}

	if status != http.StatusOK {
		// Сообщение сервера передаем как есть, без спец-обработки Unauthorized
		return nil, newAPIError(status, body, "не удалось получить историю обслуживания")
	}

	var records []models.MaintenanceRecord
	if err = decodeData(body, &records); err != nil {
		return nil, fmt.Errorf("ошибка декодирования истории ТО: %w", err)
	}

	return records, nil
}
