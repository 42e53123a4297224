package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("clients service: internal error")
)
