package email

import (
	"fmt"
	"log/slog"

	"github.com/nfrund/sitefront/internal/config"
)

// NewSender returns the sender selected by EMAIL_PROVIDER.
func NewSender(cfg config.Provider, logger *slog.Logger) (Sender, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch cfg.GetEmailProvider() {
	case "log", "":
		return &LogSender{senderAddress: cfg.GetEmailSender(), logger: logger}, nil
	case "resend":
		if cfg.GetEmailAPIKey() == "" {
			return nil, fmt.Errorf("email provider is 'resend' but EMAIL_API_KEY is not set")
		}
		return newResendSender(cfg.GetEmailAPIKey(), cfg.GetEmailSender(), logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.GetEmailProvider())
	}
}
