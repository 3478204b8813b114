package viber

// DefaultAPIURL is the base URL of the Viber REST Bot API.
const DefaultAPIURL = "https://chatapi.viber.com/pa"

// Endpoint identifies a remote Bot API operation.
// Setting and removing a webhook share the same path.
type Endpoint int

// Supported endpoints.
const (
	EndpointSetWebhook Endpoint = iota + 1
	EndpointRemoveWebhook
	EndpointMessage
	EndpointBroadcastMessage
	EndpointGetAccountInfo
	EndpointGetUserDetails
	EndpointGetOnline
)

var endpointPaths = map[Endpoint]string{
	EndpointSetWebhook:       "/set_webhook",
	EndpointRemoveWebhook:    "/set_webhook",
	EndpointMessage:          "/send_message",
	EndpointBroadcastMessage: "/broadcast_message",
	EndpointGetAccountInfo:   "/get_account_info",
	EndpointGetUserDetails:   "/get_user_details",
	EndpointGetOnline:        "/get_online",
}

// Path returns the endpoint path relative to the API base URL.
func (e Endpoint) Path() string {
	return endpointPaths[e]
}

// String returns the endpoint name.
func (e Endpoint) String() string {
	switch e {
	case EndpointSetWebhook:
		return "set_webhook"
	case EndpointRemoveWebhook:
		return "remove_webhook"
	case EndpointMessage:
		return "send_message"
	case EndpointBroadcastMessage:
		return "broadcast_message"
	case EndpointGetAccountInfo:
		return "get_account_info"
	case EndpointGetUserDetails:
		return "get_user_details"
	case EndpointGetOnline:
		return "get_online"
	default:
		return "unknown"
	}
}

// Valid reports whether the endpoint is known.
func (e Endpoint) Valid() bool {
	_, ok := endpointPaths[e]
	return ok
}
