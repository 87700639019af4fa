package notification

import (
	"fmt"
	"net/smtp"

	"hospitality/config"
	"hospitality/utils"

	"go.uber.org/zap"
)

// Notifier delivers transactional mail to guests and account holders.
type Notifier interface {
	SendVerificationCode(email, name, code string) error
	SendCheckInReminder(email, name, roomNumber, checkIn string) error
}

// SMTPNotifier sends mail over plain SMTP with auth. When no SMTP host is
// configured it degrades to logging the message, which keeps local
// development working without a mail server.
type SMTPNotifier struct {
	host     string
	port     string
	sender   string
	password string
}

// NewSMTPNotifier creates a Notifier from the app config.
func NewSMTPNotifier() *SMTPNotifier {
	return &SMTPNotifier{
		host:     config.AppConfig.SMTPHost,
		port:     config.AppConfig.SMTPPort,
		sender:   config.AppConfig.SMTPSender,
		password: config.AppConfig.SMTPPassword,
	}
}

// SendVerificationCode emails a signup verification code.
func (n *SMTPNotifier) SendVerificationCode(email, name, code string) error {
	subject := "Your verification code"
	body := fmt.Sprintf("Hello %s,\r\n\r\nYour verification code is: %s\r\nIt expires in 10 minutes.\r\n", name, code)
	return n.send(email, subject, body)
}

// SendCheckInReminder emails a day-before arrival reminder.
func (n *SMTPNotifier) SendCheckInReminder(email, name, roomNumber, checkIn string) error {
	subject := "Your stay starts tomorrow"
	body := fmt.Sprintf("Hello %s,\r\n\r\nA reminder that your stay in room %s begins on %s.\r\nWe look forward to welcoming you.\r\n", name, roomNumber, checkIn)
	return n.send(email, subject, body)
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	if n.host == "" {
		utils.GetLogger().Info("SMTP not configured, logging mail instead",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", n.sender, to, subject, body))
	addr := n.host + ":" + n.port
	auth := smtp.PlainAuth("", n.sender, n.password, n.host)

	if err := smtp.SendMail(addr, auth, n.sender, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	utils.GetLogger().Info("Mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
