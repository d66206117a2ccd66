// Package email sends transactional emails through Resend.
//
// Templates are HTML files embedded in the binary and rendered with
// html/template.
package email

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/deppfellow/bizdir/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Template names an HTML file under templates/.
type Template string

const (
	TemplateWelcome Template = "welcome"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrNotConfigured is returned by Send when no Resend API key is set.
var ErrNotConfigured = errors.New("email client is not configured")

// Sender is the part of the Resend API the client uses.
type Sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Client struct {
	sender Sender
	from   string
	logger *zerolog.Logger
}

// NewClient creates a Resend-backed client. Without an API key the client
// is created anyway and every send fails with ErrNotConfigured.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	var sender Sender
	if cfg.Integration.ResendAPIKey != "" {
		sender = resend.NewClient(cfg.Integration.ResendAPIKey).Emails
	}
	return NewClientWithSender(sender, cfg.Integration.EmailFrom, logger)
}

func NewClientWithSender(sender Sender, from string, logger *zerolog.Logger) *Client {
	return &Client{sender: sender, from: from, logger: logger}
}

// Render executes the named template with data.
func Render(name Template, data map[string]string) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+string(name)+".html")
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

// SendEmail renders templateName and sends it to a single recipient.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	if c.sender == nil {
		return ErrNotConfigured
	}

	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	resp, err := c.sender.Send(&resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().
		Str("template", string(templateName)).
		Str("email_id", resp.Id).
		Msg("email sent")
	return nil
}

// SendWelcomeEmail greets a newly registered user.
func (c *Client) SendWelcomeEmail(to, firstName, username string) error {
	if firstName == "" {
		firstName = username
	}
	return c.SendEmail(to, "Welcome to Bizdir!", TemplateWelcome, map[string]string{
		"UserFirstName": firstName,
		"Username":      username,
	})
}
