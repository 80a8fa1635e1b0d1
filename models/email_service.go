package models

import (
	"fmt"

	"clinic-portal/config"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService returns nil (not an error) when SMTP is not configured so
// callers can treat email as an optional feature.
func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return &EmailService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

func (s *EmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

func (s *EmailService) SendWelcomeEmail(toEmail, name string) error {
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
    <h2 style="color: #2563eb;">KIST Poly Clinic</h2>
    <p>Dear %s,</p>
    <p>Your account has been created. You can now book appointments, order from
    our pharmacy and keep your medical records in one place.</p>
    <p>Stay healthy,<br>KIST Poly Clinic</p>
  </div>
</body>
</html>`, name)

	return s.send(toEmail, "Welcome to KIST Poly Clinic", body)
}

func (s *EmailService) SendBookingConfirmation(toEmail, name, what, date, timeOfDay string) error {
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
    <h2 style="color: #2563eb;">KIST Poly Clinic</h2>
    <p>Dear %s,</p>
    <p>Your booking has been received and is pending confirmation:</p>
    <div style="background-color: #eff6ff; border-left: 4px solid #2563eb; padding: 15px; margin: 20px 0;">
      <p style="margin: 0;"><strong>%s</strong></p>
      <p style="margin: 5px 0 0;">%s at %s</p>
    </div>
    <p>Our team will contact you if anything changes.</p>
    <p>Stay healthy,<br>KIST Poly Clinic</p>
  </div>
</body>
</html>`, name, what, date, timeOfDay)

	return s.send(toEmail, "Booking received - KIST Poly Clinic", body)
}

func (s *EmailService) SendOrderConfirmation(toEmail, name string, orderCount int, total float64) error {
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
    <h2 style="color: #2563eb;">KIST Poly Clinic Pharmacy</h2>
    <p>Dear %s,</p>
    <p>We received your order of %d item(s) totalling %.2f. Our team will
    contact you for payment and delivery.</p>
    <p>Stay healthy,<br>KIST Poly Clinic</p>
  </div>
</body>
</html>`, name, orderCount, total)

	return s.send(toEmail, "Order received - KIST Poly Clinic", body)
}
