package telegram

import "errors"

var (
	// ErrLinkNotFound возвращается, когда код привязки не найден или просрочен
	ErrLinkNotFound = errors.New("telegram link not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("telegram service: internal error")
)
