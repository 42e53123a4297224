package telegram

import (
	"context"
	"regexp"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var linkCodeRe = regexp.MustCompile(`^[A-Z0-9]{6}$`)

const (
	startMessage = "👋 Добро пожаловать в бот косметологического салона!\n\n" +
		"Для привязки аккаунта используйте команду /link\n" +
		"Для получения справки - /help"

	linkMessage = "🔗 Для привязки Telegram аккаунта:\n\n" +
		"1. Перейдите в личный кабинет на сайте\n" +
		"2. В разделе \"Telegram\" нажмите \"Привязать аккаунт\"\n" +
		"3. Введите полученный код в этом чате\n\n" +
		"Введите код привязки:"

	helpMessage = "📖 Доступные команды:\n\n" +
		"/start - Начать работу с ботом\n" +
		"/link - Привязать аккаунт\n" +
		"/help - Получить справку\n\n" +
		"После привязки аккаунта вы будете получать уведомления о записях и изменениях статусов."

	linkedMessage = "✅ Аккаунт успешно привязан!\n\n" +
		"Теперь вы будете получать уведомления о:\n" +
		"• Новых записях\n" +
		"• Изменениях статуса записей\n" +
		"• Напоминаниях о визитах"

	linkFailedMessage = "❌ Неверный или просроченный код привязки.\n\n" +
		"Пожалуйста, получите новый код в личном кабинете и попробуйте снова."

	unknownMessage = "🤖 Я бот для уведомлений косметологического салона.\n\n" +
		"Используйте команды:\n" +
		"/start - начать работу\n" +
		"/link - привязать аккаунт\n" +
		"/help - получить справку"
)

// Bot Telegram бот салона: команды привязки аккаунта и справка
type Bot struct {
	api         *tgbotapi.BotAPI
	linkService LinkService
	logger      Logger
}

// NewBot создает новый экземпляр бота
func NewBot(api *tgbotapi.BotAPI, linkService LinkService, logger Logger) *Bot {
	return &Bot{
		api:         api,
		linkService: linkService,
		logger:      logger,
	}
}

// Run запускает long polling и обрабатывает входящие сообщения
// до отмены контекста
func (b *Bot) Run(ctx context.Context) {
	b.logger.Info("telegram bot: starting long polling as @%s", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("telegram bot: stopping")
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := msg.Text

	switch {
	case msg.IsCommand():
		b.handleCommand(chatID, msg.Command())
	case linkCodeRe.MatchString(text):
		b.handleLinkCode(ctx, msg)
	case text != "":
		b.reply(chatID, unknownMessage)
	}
}

func (b *Bot) handleCommand(chatID int64, command string) {
	b.logger.Info("telegram bot: /%s command from chat=%d", command, chatID)

	switch command {
	case "start":
		reply := tgbotapi.NewMessage(chatID, startMessage)
		reply.ReplyMarkup = tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("/link"),
				tgbotapi.NewKeyboardButton("/help"),
			),
		)
		if _, err := b.api.Send(reply); err != nil {
			b.logger.Error("telegram bot: failed to send start message to chat=%d: %v", chatID, err)
		}
	case "link":
		b.reply(chatID, linkMessage)
	case "help":
		b.reply(chatID, helpMessage)
	default:
		b.reply(chatID, unknownMessage)
	}
}

// handleLinkCode подтверждает код привязки, присланный в чат
func (b *Bot) handleLinkCode(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	code := msg.Text

	telegramID := strconv.FormatInt(msg.From.ID, 10)
	var telegramUsername *string
	if msg.From.UserName != "" {
		telegramUsername = &msg.From.UserName
	}

	b.logger.Info("telegram bot: processing link code=%s from chat=%d", code, chatID)

	user, err := b.linkService.VerifyLink(ctx, code, &telegramID, telegramUsername)
	if err != nil {
		b.logger.Warn("telegram bot: link code=%s verification failed: %v", code, err)
		b.reply(chatID, linkFailedMessage)
		return
	}

	reply := tgbotapi.NewMessage(chatID, linkedMessage)
	reply.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Error("telegram bot: failed to send linked message to chat=%d: %v", chatID, err)
	}

	b.logger.Info("telegram bot: account linked chat=%d -> user=%d", chatID, user.ID)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Error("telegram bot: failed to send message to chat=%d: %v", chatID, err)
	}
}
