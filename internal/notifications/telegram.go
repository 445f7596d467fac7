package notifications

import (
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jathow/careertrack/internal/entities"
)

type messageSender interface {
	Send(c botApi.Chattable) (botApi.Message, error)
}

// TelegramSink mirrors toasts to a Telegram chat, for headless runs where
// nobody is watching the queue.
type TelegramSink struct {
	sender messageSender
	chatID int64
}

func NewTelegramSink(token string, chatID int64) (*TelegramSink, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram api")
	}

	log.Infof("authorized on telegram account %s", api.Self.UserName)
	return &TelegramSink{sender: api, chatID: chatID}, nil
}

func (s *TelegramSink) Deliver(toast entities.Toast) error {
	msg := botApi.NewMessage(s.chatID, severityPrefix(toast.Severity)+toast.Message)
	_, err := s.sender.Send(msg)
	return err
}

func severityPrefix(severity entities.ToastSeverity) string {
	switch severity {
	case entities.SeveritySuccess:
		return "✅ "
	case entities.SeverityWarning:
		return "⚠️ "
	case entities.SeverityError:
		return "❌ "
	default:
		return "ℹ️ "
	}
}
