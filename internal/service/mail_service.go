// Package service implements the application's business logic between
// the HTTP handlers and the repositories.
//
// The mail_service.go file sends transactional email over SMTP:
// password reset links and contact-form relays.
package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/gsvlabs/storefront-backend/internal/config"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// MessageSender delivers a composed email message. gomail's Dialer
// satisfies it through the sender adapter; tests substitute a fake.
type MessageSender interface {
	Send(m *gomail.Message) error
}

type dialerSender struct {
	dialer *gomail.Dialer
}

func (s *dialerSender) Send(m *gomail.Message) error {
	return s.dialer.DialAndSend(m)
}

// MailService composes and sends the application's emails.
type MailService struct {
	sender           MessageSender
	from             string
	contactRecipient string
	frontendBaseURL  string
}

// NewMailService creates a mail service with an SMTP dialer built from
// the configuration.
func NewMailService(emailCfg config.EmailSettings, frontendCfg config.FrontendSettings) *MailService {
	dialer := gomail.NewDialer(emailCfg.Host, emailCfg.Port, emailCfg.Username, emailCfg.Password)
	return &MailService{
		sender:           &dialerSender{dialer: dialer},
		from:             emailCfg.From,
		contactRecipient: emailCfg.ContactRecipient,
		frontendBaseURL:  strings.TrimRight(frontendCfg.BaseURL, "/"),
	}
}

// NewMailServiceWithSender creates a mail service with a custom sender,
// used in tests.
func NewMailServiceWithSender(sender MessageSender, from, contactRecipient, frontendBaseURL string) *MailService {
	return &MailService{
		sender:           sender,
		from:             from,
		contactRecipient: contactRecipient,
		frontendBaseURL:  strings.TrimRight(frontendBaseURL, "/"),
	}
}

// ResetURL builds the frontend link embedding a raw reset token.
func (s *MailService) ResetURL(rawToken string) string {
	return fmt.Sprintf("%s/resetpassword/%s", s.frontendBaseURL, rawToken)
}

// SendPasswordResetEmail sends a reset link to the user. The raw token
// appears only in this message; the server stores just its hash.
func (s *MailService) SendPasswordResetEmail(toEmail, name, rawToken string) error {
	resetURL := s.ResetURL(rawToken)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Reset your password")
	m.SetBody("text/html", fmt.Sprintf(
		`<p>Hi %s,</p>
<p>We received a request to reset your password. The link below is valid for 30 minutes:</p>
<p><a href=%q>%s</a></p>
<p>If you did not request this, you can safely ignore this email.</p>`,
		name, resetURL, resetURL,
	))

	if err := s.sender.Send(m); err != nil {
		log.Error().Err(err).Str("to", utils.MaskEmail(toEmail)).Msg("Failed to send password reset email")
		return utils.NewEmailDeliveryError(err)
	}

	log.Info().Str("to", utils.MaskEmail(toEmail)).Msg("Password reset email sent")
	return nil
}

// SendContactEmail relays a contact-form submission to the configured
// recipient, with Reply-To set to the submitting user.
func (s *MailService) SendContactEmail(user *models.User, req *models.ContactRequest) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.contactRecipient)
	m.SetAddressHeader("Reply-To", user.Email, user.Name)
	m.SetHeader("Subject", fmt.Sprintf("[Contact] %s", req.Subject))
	m.SetBody("text/plain", fmt.Sprintf(
		"From: %s <%s>\n\n%s", user.Name, user.Email, req.Message,
	))

	if err := s.sender.Send(m); err != nil {
		log.Error().Err(err).Str("from", utils.MaskEmail(user.Email)).Msg("Failed to send contact email")
		return utils.NewEmailDeliveryError(err)
	}

	log.Info().Str("from", utils.MaskEmail(user.Email)).Msg("Contact email sent")
	return nil
}
