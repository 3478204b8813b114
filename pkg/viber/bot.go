package viber

import (
	"context"
	"fmt"
	"net/http"

	"github.com/VladPetriv/viber_bot/config"
	"github.com/VladPetriv/viber_bot/pkg/logger"
)

// Bot is a Viber Bot API client. It is safe for concurrent use.
type Bot struct {
	transport Transport
	callback  *Callback
}

// Options represents options that required for creating new instance of viber bot.
type Options struct {
	// Token represents viber bot auth token.
	Token string
	// APIURL represents the Bot API base URL. Defaults to DefaultAPIURL.
	APIURL string
	// ParseResponseBody makes every response carry its decoded JSON body.
	ParseResponseBody bool
	// Callback is the inbound callback the bot answers to. Its user is the default receiver.
	Callback *Callback
	// Logger receives one event per request with the operation and response body.
	Logger *logger.Logger
	// HTTPClient replaces the default HTTP client.
	HTTPClient *http.Client
}

// New creates a new instance of viber bot.
func New(opts Options) *Bot {
	return &Bot{
		transport: NewTransport(TransportOptions{
			Token:             opts.Token,
			APIURL:            opts.APIURL,
			ParseResponseBody: opts.ParseResponseBody,
			Logger:            opts.Logger,
			HTTPClient:        opts.HTTPClient,
		}),
		callback: opts.Callback,
	}
}

// NewFromConfig creates a new instance of viber bot out of the loaded config.
// When log is nil, a logger is built from the logger section of the config.
func NewFromConfig(cfg *config.Config, log *logger.Logger, callback *Callback) (*Bot, error) {
	if log == nil {
		configuredLogger, err := logger.New(logger.Options{
			LogLevel:        cfg.Logger.LogLevel,
			LogFile:         cfg.Logger.LogFilename,
			PrettyLogOutput: cfg.Logger.PrettyLogOutput,
		})
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}

		log = configuredLogger
	}

	return New(Options{
		Token:             cfg.Viber.AuthToken,
		APIURL:            cfg.Viber.APIURL,
		ParseResponseBody: cfg.Viber.ParseResponseBody,
		Callback:          callback,
		Logger:            log,
	}), nil
}

// NewWithTransport creates a new instance of viber bot on top of a custom transport.
func NewWithTransport(transport Transport, callback *Callback) *Bot {
	return &Bot{
		transport: transport,
		callback:  callback,
	}
}

// SetWebhook registers the webhook URL.
func (b *Bot) SetWebhook(ctx context.Context, opts WebhookOptions) (*Response, error) {
	return b.transport.Send(ctx, EndpointSetWebhook, ComposeWebhook(opts))
}

// RemoveWebhook removes the webhook by setting an empty URL.
func (b *Bot) RemoveWebhook(ctx context.Context) (*Response, error) {
	return b.transport.Send(ctx, EndpointRemoveWebhook, ComposeWebhook(WebhookOptions{}))
}

// SendOptions represents options for sending a message.
type SendOptions struct {
	// Message holds message fields, see TextMessage and friends.
	Message *Params
	// Keyboard is attached to the message when set.
	Keyboard *Keyboard
	// Receiver overrides the user of the bound callback.
	Receiver string
}

// Send sends a message to a single user.
// The receiver is taken from opts, then from the message, then from the bound callback.
func (b *Bot) Send(ctx context.Context, opts SendOptions) (*Response, error) {
	receiver := b.resolveReceiver(opts)
	if receiver == "" {
		return nil, fmt.Errorf("send message: %w", ErrReceiverRequired)
	}

	// The resolved receiver replaces whatever the message carries.
	message := opts.Message.Clone()
	message.Delete(fieldReceiver)

	return b.transport.Send(ctx, EndpointMessage, ComposeSendMessage(message, opts.Keyboard, receiver))
}

func (b *Bot) resolveReceiver(opts SendOptions) string {
	if opts.Receiver != "" {
		return opts.Receiver
	}
	if receiver := messageReceiver(opts.Message); receiver != "" {
		return receiver
	}

	return b.callback.UserID()
}

// messageReceiver returns the receiver set in the message, empty and non-string values count as unset.
func messageReceiver(message *Params) string {
	receiver, ok := message.Get(fieldReceiver)
	if !ok {
		return ""
	}

	value, _ := receiver.(string)
	return value
}

// Broadcast sends the same message to every recipient in one request.
func (b *Bot) Broadcast(ctx context.Context, message *Params, to []string) (*Response, error) {
	if len(to) == 0 {
		return nil, fmt.Errorf("broadcast message: %w", ErrRecipientsRequired)
	}

	return b.transport.Send(ctx, EndpointBroadcastMessage, ComposeBroadcast(message, to))
}

// GetAccountInfo fetches the bot account details.
func (b *Bot) GetAccountInfo(ctx context.Context) (*Response, error) {
	return b.transport.Send(ctx, EndpointGetAccountInfo, ComposeSimple(nil))
}

// GetUserDetails fetches details of a single user.
func (b *Bot) GetUserDetails(ctx context.Context, id string) (*Response, error) {
	if id == "" {
		return nil, fmt.Errorf("get user details: %w", ErrUserIDRequired)
	}

	return b.transport.Send(ctx, EndpointGetUserDetails, ComposeSimple(NewParams(F("id", id))))
}

// GetOnline fetches the online status of the given users.
func (b *Bot) GetOnline(ctx context.Context, ids []string) (*Response, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("get online: %w", ErrUserIDsRequired)
	}

	return b.transport.Send(ctx, EndpointGetOnline, ComposeSimple(NewParams(F("ids", ids))))
}
