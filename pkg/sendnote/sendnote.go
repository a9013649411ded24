// Package sendnote delivers a freeform love note to one of a fixed pair
// of configured recipients through an EmailJS-style HTTP endpoint.
// Delivery is fire-and-forget: a failure is reported once, never retried.
package sendnote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/viper"
)

// DefaultEndpoint is the EmailJS REST send endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Note is the payload the transport delivers.
type Note struct {
	To        string
	Message   string
	FromName  string
	FromEmail string
}

// Transport sends a note somewhere external.
type Transport interface {
	Send(ctx context.Context, n Note) error
}

// Config holds the EmailJS credentials and the fixed recipient pair,
// keyed by alias.
type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	Recipients map[string]string
}

// LoadConfig reads the email section of the keepsake config.
func LoadConfig() (Config, error) {
	cfg := Config{
		ServiceID:  viper.GetString("email.service"),
		TemplateID: viper.GetString("email.template"),
		PublicKey:  viper.GetString("email.key"),
		Recipients: viper.GetStringMapString("email.recipients"),
	}
	if cfg.ServiceID == "" || cfg.TemplateID == "" {
		return cfg, errors.New("sendnote: email.service and email.template must be configured")
	}
	if len(cfg.Recipients) == 0 {
		return cfg, errors.New("sendnote: no email.recipients configured")
	}
	return cfg, nil
}

// Resolve maps a recipient alias to its address.
func (c Config) Resolve(alias string) (string, error) {
	addr, ok := c.Recipients[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		aliases := make([]string, 0, len(c.Recipients))
		for a := range c.Recipients {
			aliases = append(aliases, a)
		}
		return "", fmt.Errorf("sendnote: unknown recipient %q (have: %s)", alias, strings.Join(aliases, ", "))
	}
	return addr, nil
}

// EmailJS is the HTTP implementation of Transport.
type EmailJS struct {
	Client   *http.Client
	Config   Config
	Endpoint string
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id,omitempty"`
	TemplateParams map[string]any `json:"template_params"`
}

// Send posts the note once. The returned error reflects the actual
// transport outcome; callers must report success only on nil and failure
// only on non-nil, never both.
func (e *EmailJS) Send(ctx context.Context, n Note) error {
	if strings.TrimSpace(n.Message) == "" {
		return errors.New("sendnote: message text required")
	}

	endpoint := e.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:  e.Config.ServiceID,
		TemplateID: e.Config.TemplateID,
		UserID:     e.Config.PublicKey,
		TemplateParams: map[string]any{
			"to_email":   n.To,
			"note":       n.Message,
			"your_name":  n.FromName,
			"your_email": n.FromEmail,
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sendnote: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sendnote: send failed: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}
	return nil
}
