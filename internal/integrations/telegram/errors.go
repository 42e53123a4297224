package telegram

import "errors"

var (
	// ErrInvalidChatID возвращается, когда telegram_id пользователя не парсится в ID чата
	ErrInvalidChatID = errors.New("telegram: invalid chat id")

	// ErrSendMessage возвращается при сбое отправки сообщения
	ErrSendMessage = errors.New("telegram: failed to send message")
)
