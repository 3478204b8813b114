package viber

import (
	"encoding/json"
	"fmt"

	"github.com/VladPetriv/viber_bot/pkg/typecast"
)

// CallbackUser represents a user described in a callback.
type CallbackUser struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	Country    string `json:"country,omitempty"`
	Language   string `json:"language,omitempty"`
	APIVersion int    `json:"api_version,omitempty"`
}

// Callback represents an inbound event sent by Viber to the webhook.
type Callback struct {
	Event        string        `json:"event"`
	Timestamp    int64         `json:"timestamp,omitempty"`
	ChatHostname string        `json:"chat_hostname,omitempty"`
	MessageToken int64         `json:"message_token,omitempty"`
	Type         string        `json:"type,omitempty"`
	Context      string        `json:"context,omitempty"`
	Description  string        `json:"desc,omitempty"`
	Subscribed   *bool         `json:"subscribed,omitempty"`
	Sender       *CallbackUser `json:"sender,omitempty"`
	User         *CallbackUser `json:"user,omitempty"`
	// UserIdentifier is set by delivery receipts (delivered, seen, failed) and unsubscribed events.
	UserIdentifier string  `json:"user_id,omitempty"`
	Message        *Params `json:"message,omitempty"`
}

// NewCallback creates a callback for the given event and sender.
func NewCallback(event string, sender *CallbackUser) *Callback {
	return &Callback{
		Event:  event,
		Sender: sender,
	}
}

// ParseCallback decodes an inbound callback body.
func ParseCallback(data []byte) (*Callback, error) {
	var callback Callback

	err := json.Unmarshal(data, &callback)
	if err != nil {
		return nil, fmt.Errorf("unmarshal callback: %w", err)
	}

	return &callback, nil
}

// UserID returns the id of the user the callback is about.
// The sender is checked first, then the user, then the bare user_id field.
func (c *Callback) UserID() string {
	if c == nil {
		return ""
	}

	if c.Sender != nil && c.Sender.ID != "" {
		return c.Sender.ID
	}
	if c.User != nil && c.User.ID != "" {
		return c.User.ID
	}

	return c.UserIdentifier
}

// IsSubscribed reports whether a conversation_started callback came from a subscriber.
func (c *Callback) IsSubscribed() bool {
	if c == nil {
		return false
	}

	return typecast.FromPtr(c.Subscribed)
}
