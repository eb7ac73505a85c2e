package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"time"

	"wepink-store/models"
)

// DefaultPaymentStatus is assumed when the provider omits a status.
const DefaultPaymentStatus = "PENDING"

// PaymentOffer identifies the storefront offer with the provider.
type PaymentOffer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentCredentials identify the store account with the payment provider.
// They are loaded from the environment and never leave the server.
type PaymentCredentials struct {
	Token        string       `json:"token"`
	EncryptedKey string       `json:"encryptedKey"`
	Name         string       `json:"name"`
	Offer        PaymentOffer `json:"offer"`
}

// PaymentDocument is the customer identity document block of the provider
// payload.
type PaymentDocument struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// PaymentCustomer mirrors the customer block of the provider payload.
// Email is lowercased and document/phone are digits-only before they get
// here.
type PaymentCustomer struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Document PaymentDocument `json:"document"`
	Phone    string          `json:"phone"`
}

type paymentRequest struct {
	Credentials PaymentCredentials `json:"credentials"`
	Amount      float64            `json:"amount"`
	Product     struct {
		Title string `json:"title"`
	} `json:"product"`
	Customer PaymentCustomer `json:"customer"`
}

type paymentResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Status  string `json:"status"`
	Pix     *struct {
		QRCode     string `json:"qrcode"`
		CopiaECola string `json:"copiaECola"`
	} `json:"pix"`
}

// PaymentClient calls the remote payment-initiation endpoint to create a
// PIX charge.
type PaymentClient struct {
	URL         string
	Credentials PaymentCredentials
	HTTP        *http.Client
}

// NewPaymentClient builds the client from the environment.
func NewPaymentClient() *PaymentClient {
	return &PaymentClient{
		URL: os.Getenv("PAYMENT_API_URL"),
		Credentials: PaymentCredentials{
			Token:        os.Getenv("PAYMENT_API_TOKEN"),
			EncryptedKey: os.Getenv("PAYMENT_ENCRYPTED_KEY"),
			Name:         os.Getenv("PAYMENT_ACCOUNT_NAME"),
			Offer: PaymentOffer{
				ID:   os.Getenv("PAYMENT_OFFER_ID"),
				Name: os.Getenv("PAYMENT_OFFER_NAME"),
			},
		},
		HTTP: &http.Client{Timeout: 30 * time.Second},
	}
}

// CreatePixCharge posts an order to the provider and returns the PIX
// payment instructions. Any transport failure, non-success status or
// malformed body comes back as an error; the caller retries by submitting
// again, never automatically.
func (p *PaymentClient) CreatePixCharge(ctx context.Context, amount float64, productTitle string, customer PaymentCustomer) (*models.PixPayment, error) {
	payload := paymentRequest{
		Credentials: p.Credentials,
		Amount:      amount,
		Customer:    customer,
	}
	payload.Product.Title = productTitle

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("payment api returned status %d: %s", resp.StatusCode, detail)
	}

	var result paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding payment response: %w", err)
	}
	if !result.Success || result.Pix == nil {
		return nil, errors.New("payment api returned an invalid response")
	}

	// either field may be missing; fall back to the other
	qr := result.Pix.QRCode
	if qr == "" {
		qr = result.Pix.CopiaECola
	}
	code := result.Pix.CopiaECola
	if code == "" {
		code = result.Pix.QRCode
	}
	if qr == "" && code == "" {
		return nil, errors.New("payment api returned no pix code")
	}

	status := result.Status
	if status == "" {
		status = DefaultPaymentStatus
	}

	return &models.PixPayment{
		QRCode:        qr,
		CopyPasteCode: code,
		TransactionID: result.ID,
		Status:        status,
	}, nil
}

// QRCodeImageURL builds the third-party image URL that renders a PIX code
// as a scannable QR image.
func QRCodeImageURL(code string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=" + url.QueryEscape(code)
}

// RandomPhone synthesizes a 10-digit phone number for orders submitted
// without one, matching what the provider expects as a minimum.
func RandomPhone() string {
	area := rand.Intn(90) + 10
	first := rand.Intn(9000) + 1000
	second := rand.Intn(9000) + 1000
	return fmt.Sprintf("%d%d%d", area, first, second)
}
