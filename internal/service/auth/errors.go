package auth

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists возвращается, когда email или телефон уже заняты
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidPassword возвращается при неверном пароле
	ErrInvalidPassword = errors.New("invalid password")

	// ErrAccessDenied возвращается при попытке входа в админку без прав
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
