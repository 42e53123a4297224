package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/avikhr/SalonBookingService/internal/domain"
)

// Notifier отправляет Telegram уведомления клиентам и администраторам
type Notifier struct {
	bot      *tgbotapi.BotAPI
	userRepo UserRepository
	logger   Logger
}

// NewNotifier создает новый экземпляр нотификатора
func NewNotifier(bot *tgbotapi.BotAPI, userRepo UserRepository, logger Logger) *Notifier {
	return &Notifier{
		bot:      bot,
		userRepo: userRepo,
		logger:   logger,
	}
}

// NotifyBookingCreated уведомляет клиента и администраторов о новой записи.
// Клиент без привязанного Telegram или с выключенными уведомлениями
// пропускается, администраторы уведомляются всегда.
func (n *Notifier) NotifyBookingCreated(ctx context.Context, booking *domain.BookingDetails) error {
	if booking.TelegramNotification && booking.UserTelegramID != nil {
		if err := n.send(*booking.UserTelegramID, userBookingMessage(booking)); err != nil {
			n.logger.Error("NotifyBookingCreated: user notification failed for booking=%d: %v", booking.ID, err)
		} else {
			n.logger.Info("NotifyBookingCreated: user notification sent for booking=%d", booking.ID)
		}
	} else {
		n.logger.Info("NotifyBookingCreated: user has no telegram, skipping user notification for booking=%d", booking.ID)
	}

	return n.notifyAdmins(ctx, booking)
}

// NotifyBookingStatus уведомляет клиента об изменении статуса записи
func (n *Notifier) NotifyBookingStatus(ctx context.Context, booking *domain.BookingDetails, status domain.BookingStatus) error {
	if booking.UserTelegramID == nil {
		n.logger.Info("NotifyBookingStatus: user has no telegram, skipping notification for booking=%d", booking.ID)
		return nil
	}

	if err := n.send(*booking.UserTelegramID, statusMessage(booking, status)); err != nil {
		return fmt.Errorf("%w: booking=%d: %v", ErrSendMessage, booking.ID, err)
	}

	n.logger.Info("NotifyBookingStatus: notification sent for booking=%d status=%s", booking.ID, status)
	return nil
}

func (n *Notifier) notifyAdmins(ctx context.Context, booking *domain.BookingDetails) error {
	admins, err := n.userRepo.GetAdminsWithTelegram(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetch admins: %v", ErrSendMessage, err)
	}

	if len(admins) == 0 {
		n.logger.Warn("notifyAdmins: no admins with telegram found")
		return nil
	}

	message := adminBookingMessage(booking)
	sent := 0
	for _, admin := range admins {
		if admin.TelegramID == nil {
			continue
		}
		if err := n.send(*admin.TelegramID, message); err != nil {
			n.logger.Error("notifyAdmins: failed to notify admin=%d: %v", admin.ID, err)
			continue
		}
		sent++
	}

	n.logger.Info("notifyAdmins: notifications sent to %d/%d admins for booking=%d", sent, len(admins), booking.ID)
	return nil
}

func (n *Notifier) send(telegramID, text string) error {
	chatID, err := strconv.ParseInt(telegramID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidChatID, telegramID)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendMessage, err)
	}
	return nil
}

func userBookingMessage(b *domain.BookingDetails) string {
	var sb strings.Builder
	sb.WriteString("📅 Вы записались на услугу!\n\n")
	sb.WriteString(fmt.Sprintf("👤 Клиент: %s %s\n", b.UserName, b.UserSurname))
	sb.WriteString(fmt.Sprintf("📱 Телефон: %s\n", b.UserPhone))
	sb.WriteString(fmt.Sprintf("💆 Услуга: %s\n", b.ServiceName))
	sb.WriteString(fmt.Sprintf("💰 Стоимость: %.0f руб.\n", b.ServicePrice))
	sb.WriteString(fmt.Sprintf("📅 Дата: %s\n", b.BookingDate.Format(domain.DateFormat)))
	sb.WriteString(fmt.Sprintf("⏰ Время: %s\n", b.BookingTime))
	sb.WriteString(fmt.Sprintf("📝 Статус: %s\n", statusText(b.Status)))
	if b.Comment != nil && *b.Comment != "" {
		sb.WriteString(fmt.Sprintf("💬 Комментарий: %s\n", *b.Comment))
	}
	sb.WriteString("\nМы свяжемся с вами для подтверждения записи.")
	return sb.String()
}

func adminBookingMessage(b *domain.BookingDetails) string {
	var sb strings.Builder
	sb.WriteString("🆕 НОВАЯ ЗАПИСЬ!\n\n")
	sb.WriteString(fmt.Sprintf("👤 Клиент: %s %s\n", b.UserName, b.UserSurname))
	sb.WriteString(fmt.Sprintf("📧 Email: %s\n", b.UserEmail))
	sb.WriteString(fmt.Sprintf("📱 Телефон: %s\n", b.UserPhone))
	sb.WriteString(fmt.Sprintf("💆 Услуга: %s\n", b.ServiceName))
	sb.WriteString(fmt.Sprintf("💰 Стоимость: %.0f руб.\n", b.ServicePrice))
	sb.WriteString(fmt.Sprintf("⏱ Длительность: %d мин.\n", b.EffectiveDuration()))
	sb.WriteString(fmt.Sprintf("📅 Дата: %s\n", b.BookingDate.Format(domain.DateFormat)))
	sb.WriteString(fmt.Sprintf("⏰ Время: %s\n", b.BookingTime))
	if b.Comment != nil && *b.Comment != "" {
		sb.WriteString(fmt.Sprintf("💬 Комментарий: %s\n", *b.Comment))
	}
	sb.WriteString(fmt.Sprintf("\n🆔 ID записи: %d", b.ID))
	return sb.String()
}

func statusMessage(b *domain.BookingDetails, status domain.BookingStatus) string {
	var sb strings.Builder
	sb.WriteString("📢 Статус вашей записи изменен\n\n")
	sb.WriteString(fmt.Sprintf("💆 Услуга: %s\n", b.ServiceName))
	sb.WriteString(fmt.Sprintf("📅 Дата: %s\n", b.BookingDate.Format(domain.DateFormat)))
	sb.WriteString(fmt.Sprintf("⏰ Время: %s\n", b.BookingTime))
	sb.WriteString(fmt.Sprintf("🔄 Новый статус: %s\n", statusText(status)))

	switch status {
	case domain.StatusCancelled:
		sb.WriteString("\n❌ Если у вас есть вопросы, свяжитесь с нами.")
	case domain.StatusConfirmed:
		sb.WriteString("\n✅ Запись подтверждена! Ждем вас в салоне.")
	case domain.StatusCompleted:
		sb.WriteString("\n✅ Спасибо за визит! Будем рады видеть вас снова.")
	}
	return sb.String()
}

func statusText(status domain.BookingStatus) string {
	switch status {
	case domain.StatusPending:
		return "⏳ Ожидание подтверждения"
	case domain.StatusConfirmed:
		return "✅ Подтверждено"
	case domain.StatusCompleted:
		return "✅ Завершено"
	case domain.StatusCancelled:
		return "❌ Отменено"
	default:
		return string(status)
	}
}

// DisabledNotifier заглушка нотификатора для конфигурации без Telegram
type DisabledNotifier struct{}

// NotifyBookingCreated ничего не отправляет
func (DisabledNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.BookingDetails) error {
	return nil
}

// NotifyBookingStatus ничего не отправляет
func (DisabledNotifier) NotifyBookingStatus(ctx context.Context, booking *domain.BookingDetails, status domain.BookingStatus) error {
	return nil
}
