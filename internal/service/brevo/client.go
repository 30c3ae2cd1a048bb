package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"debt_reminder/internal/config"

	"go.uber.org/zap"
)

var (
	ErrMissingAPIKey    = errors.New("brevo api key is not set")
	ErrTransportFailure = errors.New("email transport failure")
)

const (
	emailSenderName = "Debt Collection System"
	smsSenderName   = "DebtReminder"
	smsSubject      = "Payment Reminder"
)

// Подстроки домена, по которым адрес считается шлюзом email-to-SMS
var smsGatewayMarkers = []string{"sms.", ".sms.", "txt.", "sun.com.ph"}

type Client struct {
	apiKey      string
	apiURL      string
	senderEmail string
	http        *http.Client
	logger      *zap.Logger
}

func NewClient(cfg config.BrevoConfig, logger *zap.Logger) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		apiURL:      cfg.APIURL,
		senderEmail: cfg.SenderEmail,
		http:        &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
	}
}

type address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendRequest struct {
	Sender      address   `json:"sender"`
	To          []address `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
	TextContent string    `json:"textContent,omitempty"`
}

// IsSMSGateway сообщает, что адрес ведет на шлюз оператора, а не в обычный ящик.
func IsSMSGateway(to string) bool {
	lower := strings.ToLower(to)
	for _, m := range smsGatewayMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func (c *Client) buildRequest(to, subject, body string) sendRequest {
	req := sendRequest{
		Sender:      address{Name: emailSenderName, Email: c.senderEmail},
		To:          []address{{Email: to}},
		Subject:     subject,
		HTMLContent: body,
	}
	if IsSMSGateway(to) {
		req.Sender.Name = smsSenderName
		if req.Subject == "" {
			req.Subject = smsSubject
		}
		text := strings.ReplaceAll(body, "<br>", "\n")
		req.TextContent = strings.ReplaceAll(text, "<BR>", "\n")
		return req
	}
	if req.Subject == "" {
		req.Subject = emailSenderName
	}
	return req
}

// Send делает один POST в API Brevo. Успехом считается только 201 Created.
// Повторов внутри нет, ими управляет вызывающая сторона.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if c.apiKey == "" {
		c.logger.Error("brevo api key is not set")
		return ErrMissingAPIKey
	}

	payload, err := json.Marshal(c.buildRequest(to, subject, body))
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", ErrTransportFailure, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrTransportFailure, err)
	}
	httpReq.Header.Set("accept", "application/json")
	httpReq.Header.Set("api-key", c.apiKey)
	httpReq.Header.Set("content-type", "application/json")

	c.logger.Debug("sending email", zap.String("to", to), zap.Bool("sms_gateway", IsSMSGateway(to)))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn("email request failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("email sending failed",
			zap.String("to", to),
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(slurp))),
		)
		return fmt.Errorf("%w: status %d", ErrTransportFailure, resp.StatusCode)
	}

	c.logger.Info("email sent", zap.String("to", to))
	return nil
}
