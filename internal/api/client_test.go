package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/garagekeeper/internal/api"
	"github.com/maynagashev/garagekeeper/models"
)

func TestHTTPClient_Login(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	testEmail := "user@example.com"
	testPassword := "secret"
	testToken := "test-jwt-token"

	tests := []struct {
		name           string
		serverHandler  http.HandlerFunc
		expectedToken  string
		expectedErr    bool
		expectedErrMsg string
	}{
		{
			name: "Успех",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				// Проверяем метод, путь и тело запроса
				assert.Equal(http.MethodPost, r.Method)
				assert.Equal("/api/v1/auth/login", r.URL.Path)
				assert.Equal("application/json", r.Header.Get("Content-Type"))
				assert.Empty(r.Header.Get("Authorization")) // Вход не требует токена

				var req models.LoginRequest
				require.NoError(json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(testEmail, req.Email)
				assert.Equal(testPassword, req.Password)

				w.WriteHeader(http.StatusOK)
				_, _ = io.WriteString(w, `{"data":{"access_token":"`+testToken+`","user":{"id":1,"name":"User","email":"user@example.com"}}}`)
			},
			expectedToken: testToken,
		},
		{
			name: "Неверные учетные данные (401)",
			serverHandler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"message":"Invalid credentials"}`)
			},
			expectedErr:    true,
			expectedErrMsg: "Invalid credentials",
		},
		{
			name: "Ошибка без сообщения использует запасной текст",
			serverHandler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedErr:    true,
			expectedErrMsg: "произошла ошибка",
		},
		{
			name: "Пустой токен в ответе",
			serverHandler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = io.WriteString(w, `{"data":{"access_token":"","user":{"id":1}}}`)
			},
			expectedErr:    true,
			expectedErrMsg: "сервер вернул пустой токен",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(_ *testing.T) {
			server := httptest.NewServer(tt.serverHandler)
			defer server.Close()

			client := api.NewHTTPClient(server.URL)
			token, err := client.Login(context.Background(), testEmail, testPassword)

			if tt.expectedErr {
				require.Error(err)
				if tt.name == "Неверные учетные данные (401)" {
					require.ErrorIs(err, api.ErrAuthorization)
				}
				if tt.expectedErrMsg != "" {
					assert.Contains(err.Error(), tt.expectedErrMsg)
				}
			} else {
				require.NoError(err)
				assert.Equal(tt.expectedToken, token)
			}
		})
	}

	t.Run("Сетевая ошибка", func(_ *testing.T) {
		client := api.NewHTTPClient("http://127.0.0.1:0")
		_, err := client.Login(context.Background(), testEmail, testPassword)
		require.Error(err)
		require.ErrorIs(err, api.ErrNetwork)
	})
}

func TestHTTPClient_Register(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	t.Run("Успех", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(http.MethodPost, r.Method)
			assert.Equal("/api/v1/auth/register", r.URL.Path)

			var req models.RegisterRequest
			require.NoError(json.NewDecoder(r.Body).Decode(&req))
			assert.Equal("Иван", req.Name)

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"data":{"id":7,"name":"Иван","email":"ivan@example.com"}}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		user, err := client.Register(context.Background(), "Иван", "ivan@example.com", "secret")

		require.NoError(err)
		require.NotNil(user)
		assert.Equal(int64(7), user.ID)
		assert.Equal("ivan@example.com", user.Email)
	})

	t.Run("Список сообщений склеивается в одну строку", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"message":["email must be an email","password is too short"]}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		_, err := client.Register(context.Background(), "Иван", "bad", "1")

		require.Error(err)
		assert.Contains(err.Error(), "email must be an email, password is too short")
	})

	t.Run("Ошибка без сообщения использует запасной текст", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		_, err := client.Register(context.Background(), "Иван", "ivan@example.com", "secret")

		require.Error(err)
		assert.Contains(err.Error(), "не удалось зарегистрироваться")
	})
}

func TestHTTPClient_ListVehicles(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	testToken := "test-jwt-token"

	t.Run("Успех", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(http.MethodGet, r.Method)
			assert.Equal("/api/v1/vehicles", r.URL.Path)
			assert.Equal("Bearer "+testToken, r.Header.Get("Authorization"))

			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"data":[
				{"id":1,"make":"Toyota","model":"Corolla","year":2019,"licensePlate":"А123БВ77"},
				{"id":2,"make":"Lada","model":"Vesta","year":2021,"licensePlate":"В456ГД77","photo":"https://example.com/v.jpg"}
			]}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		vehicles, err := client.ListVehicles(context.Background())

		require.NoError(err)
		require.Len(vehicles, 2)
		assert.Equal("Toyota", vehicles[0].Make)
		assert.Nil(vehicles[0].Photo)
		require.NotNil(vehicles[1].Photo)
		assert.Equal("https://example.com/v.jpg", *vehicles[1].Photo)
	})

	t.Run("Ошибка авторизации (401)", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"Unauthorized"}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		_, err := client.ListVehicles(context.Background())

		require.Error(err)
		require.ErrorIs(err, api.ErrAuthorization)
	})

	t.Run("Без токена авторизации", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			assert.Fail("Сервер не должен был получить запрос без токена")
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		// Не вызываем SetAuthToken

		_, err := client.ListVehicles(context.Background())

		require.Error(err)
		assert.Contains(err.Error(), "токен аутентификации отсутствует")
	})
}

func TestHTTPClient_CreateVehicle(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	testToken := "test-jwt-token"

	t.Run("Успех", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(http.MethodPost, r.Method)
			assert.Equal("/api/v1/vehicles", r.URL.Path)
			assert.Equal("Bearer "+testToken, r.Header.Get("Authorization"))

			var req models.CreateVehicleRequest
			require.NoError(json.NewDecoder(r.Body).Decode(&req))
			assert.Equal("Toyota", req.Make)
			assert.Equal(2019, req.Year)

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"data":{"id":5,"make":"Toyota","model":"Corolla","year":2019,"licensePlate":"А123БВ77"}}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		vehicle, err := client.CreateVehicle(context.Background(), models.CreateVehicleRequest{
			Make:         "Toyota",
			Model:        "Corolla",
			Year:         2019,
			LicensePlate: "А123БВ77",
		})

		require.NoError(err)
		require.NotNil(vehicle)
		assert.Equal(int64(5), vehicle.ID)
	})

	t.Run("Ошибки валидации по полям", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = io.WriteString(w, `{"message":[
				{"field":"make","error":"make is required"},
				{"field":"year","error":"year must be a number"}
			]}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		_, err := client.CreateVehicle(context.Background(), models.CreateVehicleRequest{})

		require.Error(err)

		var apiErr *api.APIError
		require.ErrorAs(err, &apiErr)
		require.Len(apiErr.Fields, 2)
		assert.Equal("make", apiErr.Fields[0].Field)
		assert.Equal("make is required", apiErr.Fields[0].Message)
		assert.Contains(apiErr.Message, "year: year must be a number")
	})
}

func TestHTTPClient_UpdateVehicle(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	testToken := "test-jwt-token"

	t.Run("Успех (ответ без конверта data)", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(http.MethodPatch, r.Method)
			assert.Equal("/api/v1/vehicles/5", r.URL.Path)

			// Частичное обновление: в теле только измененные поля
			var raw map[string]any
			require.NoError(json.NewDecoder(r.Body).Decode(&raw))
			assert.Contains(raw, "year")
			assert.NotContains(raw, "make")

			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"id":5,"make":"Toyota","model":"Corolla","year":2020,"licensePlate":"А123БВ77"}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		year := 2020
		vehicle, err := client.UpdateVehicle(context.Background(), 5, models.UpdateVehicleRequest{Year: &year})

		require.NoError(err)
		require.NotNil(vehicle)
		assert.Equal(2020, vehicle.Year)
	})

	t.Run("Ошибка сервера", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		year := 2020
		_, err := client.UpdateVehicle(context.Background(), 5, models.UpdateVehicleRequest{Year: &year})

		require.Error(err)
		assert.Contains(err.Error(), "что-то пошло не так")
	})
}

func TestHTTPClient_DeleteVehicle(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	testToken := "test-jwt-token"

	t.Run("Успех", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(http.MethodDelete, r.Method)
			assert.Equal("/api/v1/vehicles/3", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		require.NoError(client.DeleteVehicle(context.Background(), 3))
	})

	t.Run("Успехом считается только статус 200", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		err := client.DeleteVehicle(context.Background(), 3)

		require.Error(err)
		assert.Contains(err.Error(), "статус 204")
	})
}

func TestHTTPClient_AddMaintenance(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	testToken := "test-jwt-token"

	t.Run("Успех", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(http.MethodPost, r.Method)
			assert.Equal("/api/v1/vehicles/3/maintenance", r.URL.Path)

			var req models.AddMaintenanceRequest
			require.NoError(json.NewDecoder(r.Body).Decode(&req))
			assert.Equal("Замена масла", req.Type)
			assert.Equal(85000, req.Mileage)

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"data":{"id":11,"type":"Замена масла","date":"2025-01-15","mileage":85000}}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		record, err := client.AddMaintenance(context.Background(), 3, models.AddMaintenanceRequest{
			Type:    "Замена масла",
			Date:    "2025-01-15",
			Mileage: 85000,
		})

		require.NoError(err)
		require.NotNil(record)
		assert.Equal(int64(11), record.ID)
	})

	t.Run("Успехом считается только статус 201", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"data":{"id":11}}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		_, err := client.AddMaintenance(context.Background(), 3, models.AddMaintenanceRequest{
			Type:    "Замена масла",
			Date:    "2025-01-15",
			Mileage: 85000,
		})

		require.Error(err)
		assert.Contains(err.Error(), "произошла ошибка")
	})
}

func TestHTTPClient_MaintenanceHistory(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	testToken := "test-jwt-token"

	t.Run("Успех", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(http.MethodGet, r.Method)
			assert.Equal("/api/v1/vehicles/3/maintenance", r.URL.Path)
			assert.Equal("Bearer "+testToken, r.Header.Get("Authorization"))

			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"data":[
				{"id":11,"type":"Замена масла","date":"2025-01-15","mileage":85000,"notes":"синтетика 5W-30"},
				{"id":12,"type":"Замена колодок","date":"2025-03-02","mileage":88000}
			]}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		records, err := client.MaintenanceHistory(context.Background(), 3)

		require.NoError(err)
		require.Len(records, 2)
		assert.Equal("синтетика 5W-30", records[0].Notes)
		assert.Empty(records[1].Notes)
	})

	t.Run("Ошибка авторизации (401)", func(_ *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"Unauthorized"}`)
		}))
		defer server.Close()

		client := api.NewHTTPClient(server.URL)
		client.SetAuthToken(testToken)
		_, err := client.MaintenanceHistory(context.Background(), 3)

		require.Error(err)
		require.ErrorIs(err, api.ErrAuthorization)
		// Сообщение сервера доходит до вызывающей стороны как есть
		assert.Contains(err.Error(), "Unauthorized")
	})
}

func TestAPIError_Unwrap(t *testing.T) {
	t.Run("401 распознается как ErrAuthorization", func(t *testing.T) {
		err := &api.APIError{Status: http.StatusUnauthorized, Message: "Unauthorized"}
		assert.True(t, errors.Is(err, api.ErrAuthorization))
	})

	t.Run("Остальные статусы не являются ErrAuthorization", func(t *testing.T) {
		err := &api.APIError{Status: http.StatusInternalServerError, Message: "oops"}
		assert.False(t, errors.Is(err, api.ErrAuthorization))
	})
}
