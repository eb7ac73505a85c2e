// utils/email.go
package utils

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"wepink-store/models"
)

// EmailService sends transactional email through SendGrid
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		panic("SENDGRID_API_KEY is not set in environment variables")
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("Wepink", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// SendVerificationEmail sends an email verification link to the user
func (es *EmailService) SendVerificationEmail(toEmail, token string) error {
	subject := "Verifique seu e-mail - Wepink"
	verificationLink := fmt.Sprintf("http://localhost:%s/verify?token=%s", os.Getenv("PORT"), token)
	htmlContent := fmt.Sprintf(
		"<strong>Confirme seu e-mail clicando no link abaixo:</strong> <a href=\"%s\">Verificar e-mail</a>",
		verificationLink,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendOrderConfirmationEmail sends the PIX payment instructions for a new
// order. The payment is still pending at this point; settlement is
// confirmed out of band by the provider.
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Pedido recebido - Wepink"
	htmlContent := fmt.Sprintf(
		"<strong>Olá, %s!</strong><br><br>Recebemos seu pedido (ID: %s) no valor de <strong>%s</strong>.<br><br>"+
			"Para concluir a compra, pague o PIX copia e cola abaixo:<br><code>%s</code><br><br>"+
			"O pedido será processado automaticamente após a confirmação do pagamento.",
		order.Customer.Name,
		order.ID,
		FormatBRL(order.TotalAmount),
		order.Payment.CopyPasteCode,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
