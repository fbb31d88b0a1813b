package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/flashbot/internal/config"
	"github.com/sandevgo/flashbot/internal/core"
	"github.com/sandevgo/flashbot/internal/service/chat"
	"github.com/sandevgo/flashbot/pkg/log"
	"github.com/sandevgo/flashbot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot   *tele.Bot
	cfg   *config.TelegramConfig
	chat  *chat.Service
	model string

	menu *tele.ReplyMarkup
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	svc *chat.Service,
	model string,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		// Unexpected handler errors must never kill the polling loop:
		// log them and tell the user something went wrong.
		OnError: func(err error, c tele.Context) {
			log.FromCtx(ctx).Error().Err(err).Msg("update handler failed")
			if c != nil {
				_ = c.Send(msgHandlerFailed)
			}
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:   b,
		cfg:   cfg,
		chat:  svc,
		model: model,
	}

	// Quick-action buttons attached to the /start message
	bot.menu = &tele.ReplyMarkup{}
	btnHelp := bot.menu.Data("📚 Help", "help")
	btnClear := bot.menu.Data("🧹 Clear chat", "clear")
	bot.menu.Inline(bot.menu.Row(btnHelp, btnClear))

	// Inject the base context and log every incoming update
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			if m := c.Message(); m != nil && m.Sender != nil {
				log.FromCtx(ctx).Info().
					Int64("user", m.Sender.ID).
					Str("kind", updateKind(m)).
					Msg("incoming update")
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle("/clear", bot.handleClear)
	b.Handle("/help", bot.handleHelp)
	b.Handle("/status", bot.handleStatus)
	b.Handle(&btnHelp, bot.handleHelpCallback)
	b.Handle(&btnClear, bot.handleClearCallback)
	b.Handle(tele.OnPhoto, bot.handlePhoto)
	b.Handle(tele.OnDocument, bot.handleDocument)
	b.Handle(tele.OnVoice, bot.handleVoice)
	b.Handle(tele.OnAudio, bot.handleVoice)
	b.Handle(tele.OnText, bot.handleText)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("model", b.model).Msg("starting telegram bot")
	b.notifyAdmin(ctx)
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

// notifyAdmin sends the one-shot startup notification when an admin chat
// is configured. Delivery failures are logged, never fatal.
func (b *Bot) notifyAdmin(ctx context.Context) {
	if b.cfg.AdminChatID == 0 {
		return
	}

	text := fmt.Sprintf("🚀 %s started\n\n⏰ Time: %s\n🤖 Model: %s\n✅ Status: active",
		core.FlashName, time.Now().Format(time.DateTime), b.model)

	err := retry.NewDefaultRetrier().Do(ctx, func() error {
		_, err := b.bot.Send(tele.ChatID(b.cfg.AdminChatID), text)
		return err
	})
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to send startup notification")
	}
}

func (b *Bot) baseCtx(c tele.Context) context.Context {
	if ctx, ok := c.Get(baseContextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

func updateKind(m *tele.Message) string {
	switch {
	case m.Photo != nil:
		return "photo"
	case m.Document != nil:
		return "document"
	case m.Voice != nil || m.Audio != nil:
		return "voice"
	case strings.HasPrefix(m.Text, "/"):
		return "command"
	default:
		return "text"
	}
}
