// Package contact relays the public contact form to the site operators.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"libfinder/internal/logger"
	"libfinder/internal/platform/mailer"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrDelivery means the mail provider did not accept the message.
	ErrDelivery = errors.New("message could not be delivered")
)

type Request struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,min=5,max=5000"`
}

type Sender interface {
	Send(ctx context.Context, msg mailer.Message) (string, error)
}

type Service struct {
	sender    Sender
	recipient string
}

func NewService(sender Sender, recipient string) *Service {
	return &Service{sender: sender, recipient: recipient}
}

func (s *Service) Submit(ctx context.Context, req Request) error {
	name := strings.TrimSpace(req.Name)
	body := strings.TrimSpace(req.Message)
	if name == "" || body == "" {
		return fmt.Errorf("%w: name and message are required", ErrInvalidInput)
	}

	id, err := s.sender.Send(ctx, mailer.Message{
		To:      []string{s.recipient},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("[문의] %s", name),
		Text:    fmt.Sprintf("이름: %s\n이메일: %s\n\n%s", name, req.Email, body),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	logger.L().Info("contact_sent", "message_id", id)
	return nil
}
