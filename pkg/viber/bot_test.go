package viber_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/VladPetriv/viber_bot/config"
	"github.com/VladPetriv/viber_bot/pkg/errs"
	"github.com/VladPetriv/viber_bot/pkg/logger"
	"github.com/VladPetriv/viber_bot/pkg/viber"
	"github.com/VladPetriv/viber_bot/pkg/viber/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bodyEquals(t *testing.T, expected string) any {
	t.Helper()

	return mock.MatchedBy(func(body *viber.Params) bool {
		actual, err := json.Marshal(body)
		if err != nil {
			return false
		}

		return string(actual) == expected
	})
}

func TestBot_Send(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo

	testCases := [...]struct {
		name         string
		callback     *viber.Callback
		opts         viber.SendOptions
		expectedBody string
		expectedErr  error
	}{
		{
			name:         "positive: receiver taken from callback sender",
			callback:     viber.NewCallback("message", &viber.CallbackUser{ID: "01234="}),
			opts:         viber.SendOptions{Message: viber.TextMessage("hello")},
			expectedBody: `{"receiver":"01234=","type":"text","text":"hello"}`,
		},
		{
			name:         "positive: explicit receiver overrides callback",
			callback:     viber.NewCallback("message", &viber.CallbackUser{ID: "01234="}),
			opts:         viber.SendOptions{Message: viber.TextMessage("hello"), Receiver: "56789="},
			expectedBody: `{"receiver":"56789=","type":"text","text":"hello"}`,
		},
		{
			name:         "positive: receiver taken from message",
			opts:         viber.SendOptions{Message: viber.NewParams(viber.F("receiver", "56789="), viber.F("text", "hi"))},
			expectedBody: `{"receiver":"56789=","text":"hi"}`,
		},
		{
			name:         "positive: explicit receiver overrides message receiver",
			opts:         viber.SendOptions{Message: viber.NewParams(viber.F("receiver", "M"), viber.F("text", "hi")), Receiver: "EXPLICIT"},
			expectedBody: `{"receiver":"EXPLICIT","text":"hi"}`,
		},
		{
			name:         "positive: empty message receiver falls back to callback user",
			callback:     viber.NewCallback("message", &viber.CallbackUser{ID: "U"}),
			opts:         viber.SendOptions{Message: viber.NewParams(viber.F("receiver", ""), viber.F("text", "hi"))},
			expectedBody: `{"receiver":"U","text":"hi"}`,
		},
		{
			name: "positive: keyboard min_api_version injected",
			opts: viber.SendOptions{
				Message:  viber.TextMessage("where are you?"),
				Keyboard: viber.NewKeyboard(nil, viber.LocationPickerButton(nil)),
				Receiver: "U",
			},
			expectedBody: `{"receiver":"U","type":"text","text":"where are you?","keyboard":{"Type":"keyboard","Buttons":[{"ActionType":"location-picker","min_api_version":3}]},"min_api_version":3}`,
		},
		{
			name:        "negative: receiver could not be resolved",
			opts:        viber.SendOptions{Message: viber.TextMessage("hello")},
			expectedErr: viber.ErrReceiverRequired,
		},
		{
			name:        "negative: empty message receiver without callback",
			opts:        viber.SendOptions{Message: viber.NewParams(viber.F("receiver", ""), viber.F("text", "hi"))},
			expectedErr: viber.ErrReceiverRequired,
		},
		{
			name:        "negative: non string message receiver without callback",
			opts:        viber.SendOptions{Message: viber.NewParams(viber.F("receiver", 123), viber.F("text", "hi"))},
			expectedErr: viber.ErrReceiverRequired,
		},
		{
			name:        "negative: callback without user",
			callback:    viber.NewCallback("webhook", nil),
			opts:        viber.SendOptions{Message: viber.TextMessage("hello")},
			expectedErr: viber.ErrReceiverRequired,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			transport := mocks.NewTransport(t)
			if tc.expectedErr == nil {
				transport.On("Send", ctx, viber.EndpointMessage, bodyEquals(t, tc.expectedBody)).
					Return(&viber.Response{StatusCode: 200}, nil).
					Once()
			}

			bot := viber.NewWithTransport(transport, tc.callback)

			response, err := bot.Send(ctx, tc.opts)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.True(t, errs.IsExpected(err))
				assert.Nil(t, response)
				transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 200, response.StatusCode)
		})
	}
}

func TestBot_CallerErrors(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo

	testCases := [...]struct {
		name        string
		call        func(bot *viber.Bot) error
		expectedErr error
	}{
		{
			name: "broadcast without recipients",
			call: func(bot *viber.Bot) error {
				_, err := bot.Broadcast(ctx, viber.TextMessage("hi"), nil)
				return err
			},
			expectedErr: viber.ErrRecipientsRequired,
		},
		{
			name: "user details without id",
			call: func(bot *viber.Bot) error {
				_, err := bot.GetUserDetails(ctx, "")
				return err
			},
			expectedErr: viber.ErrUserIDRequired,
		},
		{
			name: "online status without ids",
			call: func(bot *viber.Bot) error {
				_, err := bot.GetOnline(ctx, []string{})
				return err
			},
			expectedErr: viber.ErrUserIDsRequired,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			transport := mocks.NewTransport(t)
			bot := viber.NewWithTransport(transport, nil)

			err := tc.call(bot)
			assert.ErrorIs(t, err, tc.expectedErr)
			transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBot_TransportErrorsPropagate(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo
	transportErr := &viber.TransportError{Endpoint: viber.EndpointGetAccountInfo, Err: assert.AnError}

	transport := mocks.NewTransport(t)
	transport.On("Send", ctx, viber.EndpointGetAccountInfo, bodyEquals(t, `{}`)).
		Return(nil, transportErr).
		Once()

	bot := viber.NewWithTransport(transport, nil)

	response, err := bot.GetAccountInfo(ctx)
	assert.Nil(t, response)
	assert.Same(t, transportErr, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBot_Webhook(t *testing.T) {
	t.Parallel()

	ctx := context.TODO() //nolint: forbidigo

	transport := mocks.NewTransport(t)
	transport.On("Send", ctx, viber.EndpointSetWebhook, bodyEquals(t, `{"url":"https://my.host.com/viber"}`)).
		Return(&viber.Response{StatusCode: 200}, nil).
		Once()
	transport.On("Send", ctx, viber.EndpointRemoveWebhook, bodyEquals(t, `{"url":""}`)).
		Return(&viber.Response{StatusCode: 200}, nil).
		Once()

	bot := viber.NewWithTransport(transport, nil)

	_, err := bot.SetWebhook(ctx, viber.WebhookOptions{URL: "https://my.host.com/viber"})
	require.NoError(t, err)

	_, err = bot.RemoveWebhook(ctx)
	require.NoError(t, err)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	newConfig := func(logLevel string) *config.Config {
		return &config.Config{
			Viber: config.Viber{
				AuthToken:         "token",
				APIURL:            viber.DefaultAPIURL,
				ParseResponseBody: true,
			},
			Logger: config.Logger{LogLevel: logLevel},
		}
	}

	testCases := [...]struct {
		name        string
		cfg         *config.Config
		log         *logger.Logger
		expectError bool
	}{
		{
			name: "positive: given logger is used",
			cfg:  newConfig("not a level"),
			log:  logger.Nop(),
		},
		{
			name: "positive: logger built from config",
			cfg:  newConfig("warn"),
		},
		{
			name:        "negative: invalid log level in config",
			cfg:         newConfig("not a level"),
			expectError: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bot, err := viber.NewFromConfig(tc.cfg, tc.log, nil)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, bot)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, bot)
		})
	}
}
