package exchange

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Transport performs the actual HTTP exchange on behalf of a Client. Implementations must transmit
// the provided body bytes unmodified and must not rename or re-case the provided headers, since both
// are covered by the request signature.
type Transport interface {
	Send(ctx context.Context, method Method, url string, header http.Header, body []byte) (*TransportResponse, error)
}

// TransportResponse is what a Transport hands back for a successful (2xx) exchange.
type TransportResponse struct {
	StatusCode int
	Body       []byte
	Raw        *http.Response
}

// RestyTransport implements the Transport interface on top of a resty client. Connection pooling,
// TLS, and proxies are all whatever the underlying resty (and thus net/http) client is configured
// with.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport wraps the provided resty client, or a fresh one if nil is provided. Resty's
// own retry machinery is left at its default (disabled).
func NewRestyTransport(client *resty.Client) *RestyTransport {
	if client == nil {
		client = resty.New()
	}

	return &RestyTransport{
		client: client,
	}
}

func (o *RestyTransport) Send(
	ctx context.Context,
	method Method,
	url string,
	header http.Header,
	body []byte,
) (*TransportResponse, error) {
	//
	// Build the request. Headers are set verbatim so that their casing survives.
	//
	req := o.client.R().SetContext(ctx)

	for k, vs := range header {
		for _, v := range vs {
			req.SetHeaderVerbatim(k, v)
		}
	}

	req.SetHeader("Accept", "application/json")

	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	//
	// Make the request and make sure the status code was valid.
	//
	resp, err := req.Execute(method.String(), url)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, NewHTTPError(resp.StatusCode(), resp.Body())
	}

	return &TransportResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Raw:        resp.RawResponse,
	}, nil
}
