package models

// CreateLinkResponse ответ на создание кода привязки
type CreateLinkResponse struct {
	LinkCode string `json:"linkCode"`
}

// CheckLinkResponse статус привязки по коду
type CheckLinkResponse struct {
	Linked           bool    `json:"linked"`
	TelegramID       *string `json:"telegramId,omitempty"`
	TelegramUsername *string `json:"telegramUsername,omitempty"`
}

// UnlinkResponse ответ на отвязку аккаунта
type UnlinkResponse struct {
	Success bool `json:"success"`
}
