package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound запись не существует.
	ErrNotFound = errors.New("not found")
	// ErrGone ссылка существует, но помечена как удалённая.
	ErrGone = errors.New("marked as deleted")
	// ErrDuplicate нарушение уникальности при создании.
	ErrDuplicate = errors.New("url already exists")
	// ErrValidation некорректный ввод на границе сервиса.
	ErrValidation = errors.New("invalid input")
	// ErrGeneratorFailed генератор отказался сокращать URL.
	ErrGeneratorFailed = errors.New("short code generation failed")
	// ErrStorageUnavailable хранилище недоступно.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// GeneratorError ошибка генератора коротких кодов для конкретного URL.
type GeneratorError struct {
	Err error
	URL string
}

func (e *GeneratorError) Error() string {
	return fmt.Sprintf("cannot shorten %q: %v", e.URL, e.Err)
}

func (e *GeneratorError) Unwrap() error {
	return e.Err
}

// Is позволяет проверять errors.Is(err, ErrGeneratorFailed).
func (e *GeneratorError) Is(target error) bool {
	return target == ErrGeneratorFailed
}

// Validationf оборачивает ErrValidation с сообщением.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
