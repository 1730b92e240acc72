// Package contact accepts contact form submissions and fans them out over
// the in-process bus.
package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nfrund/sitefront/internal/domain"
	"github.com/nfrund/sitefront/internal/email"
	"github.com/nfrund/sitefront/internal/pubsub"
)

// TopicSubmitted carries every accepted submission as JSON.
const TopicSubmitted = "contact.submitted"

// Submission is one message sent through the contact form.
type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" form:"name" validate:"required,max=200"`
	Email      string    `json:"email" form:"email" validate:"required,email,max=254"`
	Company    string    `json:"company,omitempty" form:"company" validate:"max=200"`
	Message    string    `json:"message" form:"message" validate:"required,min=10,max=5000"`
	ReceivedAt time.Time `json:"received_at"`
}

var validate = validator.New()

// Normalize trims whitespace from every field.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Company = strings.TrimSpace(s.Company)
	s.Message = strings.TrimSpace(s.Message)
}

// ValidationError reports which form fields were rejected.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid contact submission: %d field(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

var fieldMessages = map[string]string{
	"Name":    "Please tell us your name.",
	"Email":   "Please enter a valid email address.",
	"Company": "Company name is too long.",
	"Message": "Please write a message of at least 10 characters.",
}

// Validate checks s and returns a *ValidationError on failure.
func (s Submission) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = fieldMessages[fe.Field()]
	}
	return &ValidationError{Fields: fields}
}

// Service accepts submissions and reacts to them.
type Service struct {
	pub       pubsub.Publisher
	sub       pubsub.Subscriber
	sender    email.Sender
	recipient string
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires a Service. sender may be nil, in which case submissions
// are only logged.
func NewService(pub pubsub.Publisher, sub pubsub.Subscriber, sender email.Sender, recipient string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		pub:       pub,
		sub:       sub,
		sender:    sender,
		recipient: recipient,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit validates s, stamps it and publishes it on TopicSubmitted.
func (svc *Service) Submit(ctx context.Context, s Submission) (Submission, error) {
	s.Normalize()
	if err := s.Validate(); err != nil {
		return s, err
	}
	s.ID = uuid.NewString()
	s.ReceivedAt = svc.now().UTC()

	payload, err := json.Marshal(s)
	if err != nil {
		return s, fmt.Errorf("failed to encode submission: %w", err)
	}
	if err := svc.pub.Publish(ctx, pubsub.Message{Topic: TopicSubmitted, Payload: payload}); err != nil {
		return s, fmt.Errorf("failed to publish submission: %w", err)
	}
	return s, nil
}

// Listen subscribes to TopicSubmitted. Each submission is logged and, when a
// recipient is configured, forwarded by email. It returns once subscribed.
func (svc *Service) Listen(ctx context.Context) error {
	return svc.sub.Subscribe(ctx, TopicSubmitted, svc.handle)
}

func (svc *Service) handle(ctx context.Context, msg pubsub.Message) error {
	var s Submission
	if err := json.Unmarshal(msg.Payload, &s); err != nil {
		return fmt.Errorf("failed to decode submission: %w", err)
	}
	svc.logger.InfoContext(ctx, "Contact form submitted",
		"id", s.ID,
		"name", s.Name,
		"email", s.Email,
		"company", s.Company,
	)

	if svc.sender == nil || svc.recipient == "" {
		return nil
	}
	subject := "New enquiry from " + s.Name
	if err := svc.sender.Send(ctx, svc.recipient, subject, notificationBody(s)); err != nil {
		return fmt.Errorf("failed to forward submission %s: %w", s.ID, err)
	}
	return nil
}

func notificationBody(s Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>%s</strong> &lt;%s&gt;", html.EscapeString(s.Name), html.EscapeString(s.Email))
	if s.Company != "" {
		fmt.Fprintf(&b, " from %s", html.EscapeString(s.Company))
	}
	b.WriteString("</p>")
	for _, para := range strings.Split(s.Message, "\n") {
		if para = strings.TrimSpace(para); para != "" {
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(para))
		}
	}
	fmt.Fprintf(&b, "<p><small>Received %s (%s)</small></p>", s.ReceivedAt.Format(time.RFC1123), s.ID)
	return b.String()
}
