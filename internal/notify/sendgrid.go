package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	pkghttp "talent-bank/pkg/http"
	"talent-bank/pkg/logging"
)

type SendGridConfig struct {
	APIKey           string
	BaseURL          string
	DefaultFromEmail string
	DefaultFromName  string
	Timeout          time.Duration
}

type EmailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type SendEmailRequest struct {
	From       EmailAddress
	To         []EmailAddress
	Subject    string
	Text       string
	HTML       string
	Categories []string
	CustomArgs map[string]string
}

type SendEmailResult struct {
	StatusCode int
	MessageID  string
}

// SendGridClient talks to the SendGrid v3 mail send endpoint. It performs a
// single attempt per call.
type SendGridClient struct {
	cfg  SendGridConfig
	http *pkghttp.Client
	log  *logging.Logger
}

func NewSendGridClient(cfg SendGridConfig, log *logging.Logger) (*SendGridClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("missing SENDGRID_API_KEY")
	}
	if strings.TrimSpace(cfg.DefaultFromEmail) == "" {
		return nil, fmt.Errorf("missing SENDGRID_FROM_EMAIL")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.sendgrid.com"
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &SendGridClient{
		cfg:  cfg,
		http: pkghttp.NewClient(cfg.Timeout),
		log:  log.With("client", "SendGridClient"),
	}, nil
}

// SendGrid mail send wire types
type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             EmailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
	Categories       []string          `json:"categories,omitempty"`
	CustomArgs       map[string]string `json:"custom_args,omitempty"`
}

type personalization struct {
	To []EmailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (c *SendGridClient) Send(ctx context.Context, req SendEmailRequest) (*SendEmailResult, error) {
	if len(req.To) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}
	if strings.TrimSpace(req.Text) == "" && strings.TrimSpace(req.HTML) == "" {
		return nil, fmt.Errorf("email body is empty")
	}

	from := req.From
	if from.Email == "" {
		from = EmailAddress{Email: c.cfg.DefaultFromEmail, Name: c.cfg.DefaultFromName}
	}

	body := mailSendRequest{
		Personalizations: []personalization{{To: req.To}},
		From:             from,
		Subject:          req.Subject,
		Categories:       req.Categories,
		CustomArgs:       req.CustomArgs,
	}
	if req.Text != "" {
		body.Content = append(body.Content, mailContent{Type: "text/plain", Value: req.Text})
	}
	if req.HTML != "" {
		body.Content = append(body.Content, mailContent{Type: "text/html", Value: req.HTML})
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Post(ctx, c.cfg.BaseURL+"/v3/mail/send", "application/json", bytes.NewReader(raw),
		map[string]string{"Authorization": "Bearer " + c.cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("sendgrid request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	res := &SendEmailResult{
		StatusCode: resp.StatusCode,
		MessageID:  resp.Header.Get("X-Message-Id"),
	}
	c.log.Debug("email accepted", "status", res.StatusCode, "message_id", res.MessageID)
	return res, nil
}
