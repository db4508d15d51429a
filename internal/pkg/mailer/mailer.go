package mailer

import (
	"Inkwell/internal/api/config"
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Attachment 邮件附件
type Attachment struct {
	Filename string `json:"filename"`
	Content  []byte `json:"-"`
}

// Mailer 出站邮件发送
type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string, attachments ...Attachment) error
}

// HTTPMailer 通过 HTTP 邮件接口发送
type HTTPMailer struct {
	client *resty.Client
	from   string
}

func NewHTTPMailer(cfg *config.MailConfig) *HTTPMailer {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Authorization", "Bearer "+cfg.ApiKey)

	return &HTTPMailer{
		client: client,
		from:   cfg.From,
	}
}

type sendRequest struct {
	From        string           `json:"from"`
	To          string           `json:"to"`
	Subject     string           `json:"subject"`
	Body        string           `json:"body"`
	Attachments []attachmentBody `json:"attachments,omitempty"`
}

type attachmentBody struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

func (m *HTTPMailer) Send(ctx context.Context, recipient, subject, body string, attachments ...Attachment) error {
	req := sendRequest{
		From:    m.from,
		To:      recipient,
		Subject: subject,
		Body:    body,
	}
	for _, a := range attachments {
		req.Attachments = append(req.Attachments, attachmentBody{
			Filename: a.Filename,
			Content:  base64.StdEncoding.EncodeToString(a.Content),
		})
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("")
	if err != nil {
		return errors.Wrap(err, "mail send request failed")
	}
	if resp.StatusCode() != http.StatusOK {
		return errors.Errorf("mail send failed: %s", resp.Status())
	}
	return nil
}
