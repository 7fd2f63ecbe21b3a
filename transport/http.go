package transport

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// bridgeReply is the JSON body returned by an HTTP bridge in front of the
// configuration manager. Status and payload mirror the trailing reply
// frames of the native protocol.
type bridgeReply struct {
	Status  string `json:"status"`
	Payload string `json:"payload"`
}

// HTTP adapts an HTTP gateway fronting the configuration manager to the
// [RequestReplier] contract: the single request frame is POSTed to
// <endpoint>/config and the JSON reply is mapped onto the [status, payload]
// frame pair.
type HTTP struct {
	client *resty.Client
}

// NewHTTP returns an HTTP-bridge-backed transport.
func NewHTTP() *HTTP {
	return &HTTP{client: resty.New()}
}

// RoundTrip implements [RequestReplier]. The endpoint is a base URL; a bare
// "host:port" is accepted and normalised to http. A ctx deadline bounds the
// exchange; on expiry the error matches context.DeadlineExceeded.
func (t *HTTP) RoundTrip(ctx context.Context, endpoint string, request [][]byte) ([][]byte, error) {
	if len(request) != 1 {
		return nil, fmt.Errorf("http bridge accepts exactly one request frame, got %d", len(request))
	}

	baseURL, err := normalizeBaseURL(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid config bridge address %q: %w", endpoint, err)
	}

	var reply bridgeReply
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain").
		SetBody(request[0]).
		SetResult(&reply).
		Post(baseURL + "/config")
	if err != nil {
		return nil, fmt.Errorf("config bridge request to %s: %w", baseURL, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("config bridge at %s returned %s", baseURL, resp.Status())
	}

	return [][]byte{[]byte(reply.Status), []byte(reply.Payload)}, nil
}

// normalizeBaseURL validates the bridge address and defaults the scheme to
// http when the address is a bare host:port.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
