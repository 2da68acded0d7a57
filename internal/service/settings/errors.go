package settings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда переопределения для ресурса нет
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
