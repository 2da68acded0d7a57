package get_price_heatmap

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_price_heatmap: invalid input data")

	// ErrServiceNotFound возвращается, если услуги нет в каталоге
	ErrServiceNotFound = errors.New("get_price_heatmap: service not found")

	// ErrFeatureLocked возвращается, если умное ценообразование недоступно на тарифе
	ErrFeatureLocked = errors.New("get_price_heatmap: smart pricing is not available on current plan")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_price_heatmap: internal error")
)
