// Package token отвечает за персистентное хранение bearer токена сессии.
// Хранится ровно одна строка в фиксированном файле; токен переживает
// перезапуск приложения и удаляется только при явном выходе.
package token

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

const (
	tokenFilePerm = 0600
	tokenDirPerm  = 0700
)

// Store хранит токен в файле по фиксированному пути.
// Запись защищена файловой блокировкой от конкурирующих экземпляров приложения.
type Store struct {
	path     string
	fileLock *flock.Flock
}

// NewStore создает хранилище токена по указанному пути.
func NewStore(path string) *Store {
	return &Store{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}
}

// Save записывает токен на диск. Возврат без ошибки гарантирует,
// что запись выполнена (или ошибка будет сообщена вызывающему).
func (s *Store) Save(token string) error {
	if token == "" {
		return errors.New("нельзя сохранить пустой токен")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), tokenDirPerm); err != nil {
		return fmt.Errorf("ошибка создания директории для токена: %w", err)
	}

	if err := s.fileLock.Lock(); err != nil {
		return fmt.Errorf("ошибка блокировки файла токена: %w", err)
	}
	defer func() {
		if errUnlock := s.fileLock.Unlock(); errUnlock != nil {
			slog.Error("Ошибка при снятии блокировки файла токена", "path", s.path, "error", errUnlock)
		}
	}()

	if err := os.WriteFile(s.path, []byte(token), tokenFilePerm); err != nil {
		return fmt.Errorf("ошибка записи токена: %w", err)
	}

	slog.Debug("Токен сохранен", "path", s.path)
	return nil
}

// Read возвращает сохраненный токен или пустую строку, если токена нет.
// Содержимое не валидируется: токен непрозрачен для клиента, срок жизни
// не отслеживается.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear удаляет сохраненный токен (выход из учетной записи).
// Отсутствие файла ошибкой не считается.
func (s *Store) Clear() error {
	if err := s.fileLock.Lock(); err != nil {
		return fmt.Errorf("ошибка блокировки файла токена: %w", err)
	}
	defer func() {
		if errUnlock := s.fileLock.Unlock(); errUnlock != nil {
			slog.Error("Ошибка при снятии блокировки файла токена", "path", s.path, "error", errUnlock)
		}
	}()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}

	slog.Debug("Токен удален", "path", s.path)
	return nil
}
