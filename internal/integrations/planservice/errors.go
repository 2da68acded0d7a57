package planservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда у сервиса тарифов нет данных о пользователе
	ErrUserNotFound = errors.New("planservice client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("planservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("planservice client: invalid response")
)
