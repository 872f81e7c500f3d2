// Package notify posts contact summaries to a chat webhook.
package notify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/slack-go/slack"

	"github.com/zhouzirui/vitrine/backend/internal/model/contact"
)

// Notifier announces a new contact submission.
type Notifier interface {
	NotifyContact(ctx context.Context, sub contact.Submission) error
}

// SlackNotifier posts to a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewSlackNotifier returns a notifier for webhookURL.
func NewSlackNotifier(webhookURL string, client *http.Client) *SlackNotifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &SlackNotifier{webhookURL: webhookURL, client: client}
}

// FormatContact renders the message text sent to the channel.
func FormatContact(sub contact.Submission) string {
	return fmt.Sprintf("Nouveau message de contact:\nNom: %s\nEmail: %s\nObjet: %s\nMessage: %s",
		sub.Fullname, sub.Email, sub.Subject, sub.Message)
}

// NotifyContact sends one webhook POST.
func (n *SlackNotifier) NotifyContact(ctx context.Context, sub contact.Submission) error {
	msg := &slack.WebhookMessage{Text: FormatContact(sub)}
	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.client, msg); err != nil {
		return fmt.Errorf("slack webhook: %w", err)
	}
	return nil
}
