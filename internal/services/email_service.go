package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/connecthire/connecthire-server/internal/models"
)

// Mailer sends the verification code email. The SMTP implementation below
// is the only production one; tests substitute a recording fake.
type Mailer interface {
	SendOTP(to, code string, purpose models.Purpose) error
}

type SMTPMailer struct {
	dialer    *gomail.Dialer
	fromName  string
	fromEmail string
}

func NewSMTPMailer(host string, port int, user, password, fromName, fromEmail string) *SMTPMailer {
	return &SMTPMailer{
		dialer:    gomail.NewDialer(host, port, user, password),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *SMTPMailer) SendOTP(to, code string, purpose models.Purpose) error {
	subject, body := otpEmail(code, purpose)

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromEmail, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func otpEmail(code string, purpose models.Purpose) (subject, html string) {
	heading := "Sign In to ConnectHire"
	intro := "To sign in to your account, please use the verification code below:"
	subject = "ConnectHire - Sign In Verification"
	if purpose == models.PurposeSignup {
		heading = "Welcome to ConnectHire!"
		intro = "Thank you for joining ConnectHire! To complete your registration, please use the verification code below:"
		subject = "Welcome to ConnectHire - Verify Your Email"
	}

	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>ConnectHire Verification</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #667eea; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
      <h1>ConnectHire</h1>
      <p>Connect Developers with Employers</p>
    </div>
    <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
      <h2>%s</h2>
      <p>%s</p>
      <div style="background: #667eea; color: white; font-size: 32px; font-weight: bold; padding: 20px; text-align: center; border-radius: 10px; letter-spacing: 5px;">%s</div>
      <p><strong>This code will expire in 15 minutes.</strong></p>
      <p>If you didn't request this code, please ignore this email.</p>
      <p>Best regards,<br>The ConnectHire Team</p>
    </div>
    <div style="text-align: center; margin-top: 20px; color: #666; font-size: 14px;">
      <p>This is an automated email, please do not reply.</p>
    </div>
  </div>
</body>
</html>`, heading, intro, code)

	return subject, html
}
