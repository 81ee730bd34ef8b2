package coins

import (
	"context"
	"net/http"
	"strings"

	"github.com/ardeearam/coins-ph-go/exchange"
	"go.uber.org/zap"
)

// Client implements the exchange.Client interface for the coins.ph API. Every call is signed with
// the client's API secret and sent exactly once through the configured transport.
type Client struct {
	apiKey    string
	signer    *Signer
	host      string
	transport exchange.Transport
	log       *zap.Logger
}

// Option configures optional parts of a Client.
type Option func(*Client)

// WithHost points the client at a host other than DefaultHost. A trailing slash is added if
// missing.
func WithHost(host string) Option {
	return func(o *Client) {
		if host == "" {
			return
		}

		if !strings.HasSuffix(host, "/") {
			host += "/"
		}

		o.host = host
	}
}

// WithTransport replaces the default resty-backed transport.
func WithTransport(transport exchange.Transport) Option {
	return func(o *Client) {
		o.transport = transport
	}
}

// WithLogger sets the logger used for request tracing. Credentials are never logged.
func WithLogger(log *zap.Logger) Option {
	return func(o *Client) {
		o.log = log
	}
}

// NewClient builds a client for the provided credentials. Missing credentials are not rejected here;
// they fail every call with a *ConfigError before anything is sent.
func NewClient(key string, secret string, opts ...Option) *Client {
	o := &Client{
		apiKey:    key,
		signer:    &Signer{secret: []byte(secret)},
		host:      DefaultHost,
		transport: exchange.NewRestyTransport(nil),
		log:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Host returns the host (with trailing slash) that requests are sent to.
func (o *Client) Host() string {
	return o.host
}

// URL builds the complete request URL for the provided endpoint:
//
//	{host}{version}/{path}/[?{query}]
//
// The slash after the path is always present, even without a query string.
func (o *Client) URL(endpoint *exchange.Endpoint) string {
	version := endpoint.Version
	if version == "" {
		version = LegacyVersion
	}

	url := o.host + version + "/" + endpoint.Path + "/"

	if qs := endpoint.Query.Encode(); qs != "" {
		url += "?" + qs
	}

	return url
}

// Do implements the exchange.Client interface.
func (o *Client) Do(ctx context.Context, endpoint *exchange.Endpoint) (exchange.Response, error) {
	resp, err := o.Execute(ctx, endpoint)
	if resp == nil {
		return nil, err
	}

	return resp, err
}

// Execute builds, signs, and sends the request described by the provided endpoint, then unwraps the
// response. Transport failures (including non-2xx responses, as *exchange.HTTPError) are returned
// unchanged. A successful response whose body carries an "errors" array yields an *APIError along
// with the wrapped response.
func (o *Client) Execute(ctx context.Context, endpoint *exchange.Endpoint) (*Response, error) {
	if o.apiKey == "" {
		return nil, &ConfigError{Field: "key"}
	}

	method := endpoint.Verb()
	url := o.URL(endpoint)

	//
	// Serialize the body once. These exact bytes are signed and transmitted. GET requests never
	// carry a body.
	//
	var body []byte

	if method != exchange.GET {
		var err error

		body, err = CanonicalJSON(endpoint.Body)
		if err != nil {
			return nil, err
		}
	}

	envelope, err := o.signer.Sign(url, body)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header[SignatureHeader] = []string{envelope.Signature}
	header[KeyHeader] = []string{o.apiKey}
	header[NonceHeader] = []string{envelope.Nonce}

	o.log.Debug("dispatching request",
		zap.String("method", method.String()),
		zap.String("url", url),
		zap.String("nonce", envelope.Nonce),
		zap.Int("body-bytes", len(body)),
	)

	tr, err := o.transport.Send(ctx, method, url, header, body)
	if err != nil {
		return nil, err
	}

	return wrapResponse(tr, endpoint.ResponseField)
}
