package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/i18n"
	"github.com/yourusername/dram-rate-bot/internal/usecase"
)

// ResetCommand forgets the conversation and starts over
const ResetCommand = "/reset"

// botAPI part of tgbotapi.BotAPI used by the handler
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// BotHandler Telegram bot handler
type BotHandler struct {
	bot    botAPI
	name   string
	dialog usecase.DialogUseCase
	logger *zap.Logger
}

// NewBotHandler creates the handler and logs the bot in
func NewBotHandler(token string, dialog usecase.DialogUseCase, logger *zap.Logger) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	h := newBotHandler(bot, dialog, logger)
	h.name = bot.Self.UserName
	return h, nil
}

func newBotHandler(bot botAPI, dialog usecase.DialogUseCase, logger *zap.Logger) *BotHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BotHandler{
		bot:    bot,
		dialog: dialog,
		logger: logger.With(zap.String("channel", entity.ChannelTelegram)),
	}
}

// Start long-polls updates until ctx is done
func (h *BotHandler) Start(ctx context.Context) error {
	h.logger.Info("telegram bot started", zap.String("bot", h.name))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("telegram bot stopping")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}

			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage runs one dialog turn and sends the replies
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil || message.Text == "" {
		return
	}

	chatID := message.Chat.ID
	key := ConversationKey(chatID)
	text := message.Text

	if strings.TrimSpace(text) == ResetCommand {
		if err := h.dialog.ResetConversation(ctx, key); err != nil {
			h.logger.Error("failed to reset conversation", zap.String("conversation", key), zap.Error(err))
			h.sendMessage(chatID, entity.OutboundMessage{Text: i18n.Global("error", nil)})
			return
		}
		text = usecase.StartCommand
	}

	replies, err := h.dialog.HandleTurn(ctx, key, entity.ChannelTelegram, text)
	if err != nil {
		// the dialog already logged the failure with its kind
		h.sendMessage(chatID, entity.OutboundMessage{Text: i18n.Global("error", nil)})
		return
	}

	for _, reply := range replies {
		h.sendMessage(chatID, reply)
	}
}

// sendMessage sends one outbound message, retrying as plain text when
// Telegram rejects the Markdown
func (h *BotHandler) sendMessage(chatID int64, out entity.OutboundMessage) {
	msg := tgbotapi.NewMessage(chatID, out.Text)
	if out.Markdown {
		msg.Text = toTelegramMarkdown(out.Text)
		msg.ParseMode = tgbotapi.ModeMarkdown
	}
	if len(out.Keyboard) > 0 {
		msg.ReplyMarkup = replyKeyboard(out.Keyboard)
	}

	if _, err := h.bot.Send(msg); err != nil {
		if msg.ParseMode == "" {
			h.logger.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
			return
		}

		h.logger.Warn("markdown rejected, sending plain text", zap.Int64("chat_id", chatID), zap.Error(err))
		msg.Text = out.Text
		msg.ParseMode = ""
		if _, err := h.bot.Send(msg); err != nil {
			h.logger.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}
}

// ConversationKey state key of a Telegram chat
func ConversationKey(chatID int64) string {
	return entity.ChannelTelegram + ":" + strconv.FormatInt(chatID, 10)
}

// replyKeyboard one keyboard row per label row
func replyKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	buttons := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		line := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			line = append(line, tgbotapi.NewKeyboardButton(label))
		}
		buttons = append(buttons, line)
	}

	markup := tgbotapi.NewReplyKeyboard(buttons...)
	markup.ResizeKeyboard = true
	return markup
}

// toTelegramMarkdown rewrites **bold** and *italic* markers to Telegram's
// legacy Markdown, where bold is *x* and italic is _x_
func toTelegramMarkdown(text string) string {
	const bold = "\x00"
	text = strings.ReplaceAll(text, "**", bold)
	text = strings.ReplaceAll(text, "*", "_")
	return strings.ReplaceAll(text, bold, "*")
}
