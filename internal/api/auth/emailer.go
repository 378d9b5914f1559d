package auth

import (
	"fmt"
	"log"
	"net/smtp"

	"agency-cms/config"
)

func sendMail(to, subject, body string) error {
	from := config.SMTP_FROM
	password := config.SMTP_PASSWORD
	host := config.SMTP_HOST
	port := config.SMTP_PORT

	if host == "" || from == "" {
		log.Printf("SMTP not configured, skipping mail to %s: %s", to, subject)
		return nil
	}

	auth := smtp.PlainAuth("", from, password, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		log.Println("❌ SMTP error:", err)
	}
	return err
}

func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("http://localhost:%s/verify?token=%s", config.PORT, token)
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)
	return sendMail(to, "Verify Your Account", body)
}

// SendContactEmail relays a public contact-form submission to the agency's
// contact inbox.
func SendContactEmail(name, email, message string) error {
	to := config.CONTACT_EMAIL
	if to == "" {
		to = config.SMTP_FROM
	}
	body := fmt.Sprintf("New contact form submission\n\nName: %s\nEmail: %s\n\n%s", name, email, message)
	return sendMail(to, "Contact form: "+name, body)
}
