package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/resend/resend-go/v3"
)

// Provider calls get a bounded timeout so the primary send can never block
// the request path indefinitely.
const sendTimeout = 10 * time.Second

// Service sends transactional email through the Resend API
type Service struct {
	client    *resend.Client
	apiKey    string
	fromEmail string // verified sender, fixed by configuration
	toEmail   string // site owner's contact inbox
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SendResult reports the outcome of a provider call
type SendResult struct {
	Success bool
	ID      string
}

func NewService(apiKey, fromEmail, toEmail string) *Service {
	return &Service{
		client:    resend.NewClient(apiKey),
		apiKey:    apiKey,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// contactEmailTemplate is the HTML template for the admin notification
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a1a2e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a1a2e; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div>{{.Name}} ({{.Email}})</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the BitBlog contact form.</p>
            <p>Reply to this email to answer {{.Name}} directly.</p>
        </div>
    </div>
</body>
</html>`

// autoReplyTemplate is the HTML template for the sender's acknowledgment
const autoReplyTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thanks for reaching out!</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <p>Hi {{.Name}},</p>
        <p>Thanks for your message! It has been delivered and you will hear back soon.</p>
        <p>— BitBlog</p>
    </div>
</body>
</html>`

// SendContactEmail sends the contact form notification to the site owner.
// Reply-To is set to the sender's address so the owner can respond directly.
// A failure here means the message was not delivered; callers must treat it
// as fatal to the submission.
func (s *Service) SendContactEmail(ctx context.Context, data ContactEmailData) (SendResult, error) {
	body, err := renderTemplate("contact", contactEmailTemplate, data)
	if err != nil {
		return SendResult{}, err
	}

	subject := data.Subject
	if subject == "" {
		subject = fmt.Sprintf("New contact message from %s", data.Name)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.toEmail},
		ReplyTo: data.Email,
		Subject: subject,
		Html:    body,
	})
	if err != nil {
		return SendResult{}, fmt.Errorf("failed to send contact email: %w", err)
	}

	return SendResult{Success: true, ID: sent.Id}, nil
}

// SendContactAutoReply sends a best-effort acknowledgment to the form
// submitter. Callers swallow failures; the admin notification is the
// submission's source of truth.
func (s *Service) SendContactAutoReply(ctx context.Context, data ContactEmailData) error {
	body, err := renderTemplate("auto-reply", autoReplyTemplate, data)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, err = s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{data.Email},
		Subject: "Thanks for reaching out!",
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to send auto-reply: %w", err)
	}

	return nil
}

// IsConfigured checks if the service has a usable Resend configuration
func (s *Service) IsConfigured() bool {
	return s.apiKey != "" && s.fromEmail != "" && s.toEmail != ""
}

func renderTemplate(name, text string, data ContactEmailData) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	return body.String(), nil
}
