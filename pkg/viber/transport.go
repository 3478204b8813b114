package viber

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/VladPetriv/viber_bot/pkg/logger"
	"github.com/google/uuid"
	"resty.dev/v3"
)

// Request headers sent with every call.
const (
	HeaderAuthToken   = "X-Viber-Auth-Token"
	HeaderContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// Transport sends composed request bodies to the Bot API.
type Transport interface {
	// Send posts the body to the endpoint and returns the response.
	Send(ctx context.Context, endpoint Endpoint, body *Params) (*Response, error)
}

type httpTransport struct {
	httpClient        *resty.Client
	parseResponseBody bool
	logger            *logger.Logger
}

var _ Transport = (*httpTransport)(nil)

// TransportOptions represents options for creating the HTTP transport.
type TransportOptions struct {
	// Token is sent in the auth header of every request.
	Token string
	// APIURL is the API base URL. Defaults to DefaultAPIURL.
	APIURL string
	// ParseResponseBody makes responses carry the decoded JSON body.
	ParseResponseBody bool
	// Logger receives one event per request. Nil disables logging.
	Logger *logger.Logger
	// HTTPClient replaces the default HTTP client, e.g. to set a timeout.
	HTTPClient *http.Client
}

// NewTransport creates a new HTTP transport for the Bot API.
func NewTransport(opts TransportOptions) Transport {
	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	httpClient := resty.New()
	if opts.HTTPClient != nil {
		httpClient = resty.NewWithClient(opts.HTTPClient)
	}

	httpClient.
		SetBaseURL(apiURL).
		SetHeader(HeaderAuthToken, opts.Token).
		SetHeader(HeaderContentType, contentTypeJSON)

	return &httpTransport{
		httpClient:        httpClient,
		parseResponseBody: opts.ParseResponseBody,
		logger:            opts.Logger,
	}
}

func (t *httpTransport) Send(ctx context.Context, endpoint Endpoint, body *Params) (*Response, error) {
	if !endpoint.Valid() {
		return nil, fmt.Errorf("unknown endpoint: %d", endpoint)
	}

	payload, err := json.Marshal(body.Clone().Compact())
	if err != nil {
		return nil, fmt.Errorf("marshal %s request body: %w", endpoint, err)
	}

	requestID := uuid.NewString()

	response, err := t.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(endpoint.Path())
	if err != nil {
		t.logFailure(requestID, endpoint, err)
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	rawBody := response.String()
	t.logResponse(requestID, endpoint, response.StatusCode(), rawBody)

	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return nil, &StatusError{
			Endpoint:   endpoint,
			StatusCode: response.StatusCode(),
			Body:       rawBody,
		}
	}

	output := &Response{
		StatusCode: response.StatusCode(),
		RawBody:    []byte(rawBody),
		raw:        response,
	}

	if t.parseResponseBody {
		var decoded map[string]any
		err := json.Unmarshal(output.RawBody, &decoded)
		if err != nil {
			return nil, &DecodeError{Endpoint: endpoint, Body: rawBody, Err: err}
		}

		output.Body = decoded
	}

	return output, nil
}

func (t *httpTransport) logResponse(requestID string, endpoint Endpoint, statusCode int, body string) {
	if t.logger == nil {
		return
	}

	t.logger.Info().
		Str("request_id", requestID).
		Str("operation", endpoint.String()).
		Int("status_code", statusCode).
		Str("body", body).
		Msg("viber api response")
}

func (t *httpTransport) logFailure(requestID string, endpoint Endpoint, err error) {
	if t.logger == nil {
		return
	}

	t.logger.Error().
		Err(err).
		Str("request_id", requestID).
		Str("operation", endpoint.String()).
		Msg("viber api request failed")
}
