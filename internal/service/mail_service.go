package service

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/config"
	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
	"github.com/anthonypiegaro/OA-Reporting-Backend/pkg/logging"
	"github.com/anthonypiegaro/OA-Reporting-Backend/utilities"
)

// MailService sends the welcome email to newly registered athletes.
type MailService interface {
	SendWelcome(user model.User) error
}

type mailService struct {
	cfg    config.MailConfig
	apiKey string
}

func NewMailService(cfg config.MailConfig) MailService {
	return &mailService{
		cfg:    cfg,
		apiKey: os.Getenv("SENDGRID_API_KEY"),
	}
}

// InitMailEventListeners wires the welcome mail to user registration. Mail
// failures are logged only; registration already succeeded.
func InitMailEventListeners(cfg config.MailConfig) {
	mailService := NewMailService(cfg)
	utilities.GlobalEventBus.Subscribe(EventUserRegistered, func(data interface{}) {
		user, ok := data.(model.User)
		if !ok {
			logging.Error("user.registered event carried unexpected payload %T", data)
			return
		}
		if err := mailService.SendWelcome(user); err != nil {
			logging.Error("welcome mail to %s failed: %v", user.Email, err)
		}
	})
}

func (s *mailService) SendWelcome(user model.User) error {
	if !s.cfg.Enabled {
		return nil
	}
	if s.apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}

	name := user.FirstName + " " + user.LastName
	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	to := mail.NewEmail(name, user.Email)
	subject := "Welcome to Optimum Athletes - Your Journey to Peak Performance Begins!"
	plain := fmt.Sprintf("Hi %s,\n\nYour account is ready. Log in to see your assessments and reports.", name)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Log in to see your assessments and reports.</p>", name)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}
