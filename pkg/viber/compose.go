package viber

// EventType represents a callback event the webhook can subscribe to.
type EventType string

// Supported webhook event types.
const (
	EventDelivered           EventType = "delivered"
	EventSeen                EventType = "seen"
	EventFailed              EventType = "failed"
	EventSubscribed          EventType = "subscribed"
	EventUnsubscribed        EventType = "unsubscribed"
	EventConversationStarted EventType = "conversation_started"
	EventMessage             EventType = "message"
	EventWebhook             EventType = "webhook"
)

// WebhookOptions represents options for the set_webhook request.
type WebhookOptions struct {
	// URL is the address Viber sends callbacks to. An empty URL removes the webhook.
	URL string
	// EventTypes limits the callbacks sent to the webhook. Nil means server defaults.
	EventTypes []EventType
	// SendName asks Viber to include the user name in callbacks.
	SendName *bool
	// SendPhoto asks Viber to include the user photo in callbacks.
	SendPhoto *bool
}

// ComposeSendMessage builds the send_message body.
// Layers are applied in order {receiver}, message, keyboard; the last write wins.
// The keyboard's min_api_version is injected only when the message does not set its own.
func ComposeSendMessage(message *Params, keyboard *Keyboard, receiver string) *Params {
	var receiverValue any
	if receiver != "" {
		receiverValue = receiver
	}

	params := Merge(
		NewParams(F(fieldReceiver, receiverValue)),
		message,
		keyboard.Fields(),
	)

	if version, ok := keyboard.MinAPIVersion(); ok && !hasValue(message, fieldMinAPIVersion) {
		params.Set(fieldMinAPIVersion, version)
	}

	return params.Compact()
}

// ComposeBroadcast builds the broadcast_message body.
func ComposeBroadcast(message *Params, recipients []string) *Params {
	return Merge(message, NewParams(F(fieldBroadcastList, recipients))).Compact()
}

// ComposeWebhook builds the set_webhook body.
func ComposeWebhook(opts WebhookOptions) *Params {
	var eventTypes []string
	if opts.EventTypes != nil {
		eventTypes = make([]string, 0, len(opts.EventTypes))
		for _, eventType := range opts.EventTypes {
			eventTypes = append(eventTypes, string(eventType))
		}
	}

	return NewParams(
		F("url", opts.URL),
		F("event_types", eventTypes),
		F("send_name", opts.SendName),
		F("send_photo", opts.SendPhoto),
	).Compact()
}

// ComposeSimple builds a body out of the given fields as is.
func ComposeSimple(fields *Params) *Params {
	return fields.Clone().Compact()
}

// hasValue reports whether the key is present with a value that is not absent.
func hasValue(p *Params, key string) bool {
	value, ok := p.Get(key)
	return ok && !isAbsent(value)
}

const (
	fieldReceiver      = "receiver"
	fieldBroadcastList = "broadcast_list"
)
