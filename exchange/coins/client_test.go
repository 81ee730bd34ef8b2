package coins

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ardeearam/coins-ph-go/exchange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey  = "k3y"
	testHost = "https://coins.example/"
)

// recordingTransport captures every request and answers with a canned response.
type recordingTransport struct {
	calls []recordedCall

	status int
	body   string
	err    error
}

type recordedCall struct {
	method exchange.Method
	url    string
	header http.Header
	body   []byte
}

func (o *recordingTransport) Send(
	_ context.Context,
	method exchange.Method,
	url string,
	header http.Header,
	body []byte,
) (*exchange.TransportResponse, error) {
	o.calls = append(o.calls, recordedCall{method: method, url: url, header: header, body: body})

	if o.err != nil {
		return nil, o.err
	}

	status := o.status
	if status == 0 {
		status = http.StatusOK
	}

	return &exchange.TransportResponse{StatusCode: status, Body: []byte(o.body)}, nil
}

func (o *recordingTransport) last(t *testing.T) recordedCall {
	t.Helper()
	require.NotEmpty(t, o.calls)

	return o.calls[len(o.calls)-1]
}

func newTestClient(tr exchange.Transport) *Client {
	return NewClient(testKey, testSecret, WithHost(testHost), WithTransport(tr))
}

func TestURLUsesLegacyVersionAndQuery(t *testing.T) {
	client := newTestClient(&recordingTransport{})

	url := client.URL(&exchange.Endpoint{
		Path:   "buyorder",
		Method: exchange.GET,
		Query:  Params{"buyorder_id": "42"}.values(),
	})

	assert.Equal(t, testHost+"d/api/buyorder/?buyorder_id=42", url)
}

func TestURLWithoutQueryKeepsTrailingSlash(t *testing.T) {
	client := newTestClient(&recordingTransport{})

	url := client.URL(&exchange.Endpoint{Path: "transfers", Method: exchange.POST, Version: V3})

	assert.Equal(t, testHost+"api/v3/transfers/", url)
}

func TestURLFormEncodesQuery(t *testing.T) {
	client := newTestClient(&recordingTransport{})

	url := client.URL(&exchange.Endpoint{
		Path:  "payin-outlets",
		Query: Params{"region": "PH", "q": "7 eleven&co"}.values(),
	})

	assert.Equal(t, testHost+"d/api/payin-outlets/?q=7+eleven%26co&region=PH", url)
}

func TestWithHostAddsTrailingSlash(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/", NewClient(testKey, testSecret, WithHost("http://localhost:8080")).Host())
	assert.Equal(t, DefaultHost, NewClient(testKey, testSecret, WithHost("")).Host())
	assert.Equal(t, DefaultHost, NewClient(testKey, testSecret).Host())
}

func TestExecuteSetsAuthenticationHeaders(t *testing.T) {
	tr := &recordingTransport{body: `{}`}
	client := newTestClient(tr)

	_, err := client.Execute(context.Background(), &exchange.Endpoint{Path: "crypto-routes", Version: V3})
	require.NoError(t, err)

	call := tr.last(t)
	assert.Equal(t, exchange.GET, call.method)
	assert.Equal(t, testHost+"api/v3/crypto-routes/", call.url)
	assert.Nil(t, call.body)

	// Header keys must be kept verbatim rather than canonicalized.
	require.Len(t, call.header[KeyHeader], 1)
	require.Len(t, call.header[NonceHeader], 1)
	require.Len(t, call.header[SignatureHeader], 1)

	nonce := call.header[NonceHeader][0]
	assert.Equal(t, testKey, call.header[KeyHeader][0])
	assert.Equal(t, expectedSignature(testSecret, nonce+call.url), call.header[SignatureHeader][0])
}

func TestExecuteSignsExactlyTheTransmittedBody(t *testing.T) {
	tr := &recordingTransport{body: `{"transfer":{"id":"t1"}}`}
	client := newTestClient(tr)

	_, err := client.Execute(context.Background(), &exchange.Endpoint{
		Path:    "transfers",
		Method:  exchange.POST,
		Version: V3,
		Body: &TransferRequest{
			Account:       "acc-1",
			TargetAddress: "ted@example.com",
			Amount:        decimal.RequireFromString("250.00"),
			Message:       "<rent & utilities>",
		},
	})
	require.NoError(t, err)

	call := tr.last(t)
	want := `{"account":"acc-1","target_address":"ted@example.com","amount":"250","message":"<rent & utilities>"}`
	assert.Equal(t, want, string(call.body))

	nonce := call.header[NonceHeader][0]
	assert.Equal(t, expectedSignature(testSecret, nonce+testHost+"api/v3/transfers/"+want), call.header[SignatureHeader][0])
}

func TestExecuteDropsBodyForGET(t *testing.T) {
	tr := &recordingTransport{body: `{}`}
	client := newTestClient(tr)

	_, err := client.Execute(context.Background(), &exchange.Endpoint{
		Path:  "buyorder",
		Query: Params{"status": "pending"}.values(),
		Body:  map[string]string{"ignored": "yes"},
	})
	require.NoError(t, err)

	call := tr.last(t)
	assert.Nil(t, call.body)
	assert.Equal(t, expectedSignature(testSecret, call.header[NonceHeader][0]+call.url), call.header[SignatureHeader][0])
}

func TestExecuteUsesFreshNoncePerCall(t *testing.T) {
	tr := &recordingTransport{body: `{}`}
	client := newTestClient(tr)

	for i := 0; i < 3; i++ {
		_, err := client.Execute(context.Background(), &exchange.Endpoint{Path: "buyorder"})
		require.NoError(t, err)
	}

	prev := decimal.Zero

	for _, call := range tr.calls {
		n, err := decimal.NewFromString(call.header[NonceHeader][0])
		require.NoError(t, err)
		assert.True(t, n.GreaterThan(prev))

		prev = n
	}
}

func TestExecuteFailsWithoutCredentials(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		secret string
		field  string
	}{
		{name: "no key", key: "", secret: testSecret, field: "key"},
		{name: "no secret", key: testKey, secret: "", field: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &recordingTransport{}
			client := NewClient(tt.key, tt.secret, WithTransport(tr))

			_, err := client.Execute(context.Background(), &exchange.Endpoint{Path: "buyorder"})

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Empty(t, tr.calls, "no request may be sent without credentials")
		})
	}
}

func TestExecuteSurfacesEmbeddedErrors(t *testing.T) {
	tr := &recordingTransport{status: http.StatusOK, body: `{"errors":["bad nonce","second"]}`}
	client := newTestClient(tr)

	resp, err := client.Execute(context.Background(), &exchange.Endpoint{Path: "buyorder", ResponseField: "order"})
	require.Error(t, err)
	assert.EqualError(t, err, "bad nonce")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusOK, apiErr.Code())
	assert.Equal(t, "bad nonce", apiErr.Message())
	assert.Equal(t, []string{"bad nonce", "second"}, apiErr.Messages())

	var generic exchange.APIError = apiErr
	assert.Equal(t, "bad nonce", generic.Message())

	// The received response is still handed back.
	require.NotNil(t, resp)
	assert.JSONEq(t, `{"errors":["bad nonce","second"]}`, string(resp.Body()))
}

func TestExecuteIgnoresEmptyErrorsArray(t *testing.T) {
	tr := &recordingTransport{body: `{"errors":[],"order":{"id":1}}`}
	client := newTestClient(tr)

	resp, err := client.Execute(context.Background(), &exchange.Endpoint{Path: "buyorder", ResponseField: "order"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(resp.Payload()))
}

func TestExecuteUnwrapsResponseField(t *testing.T) {
	tr := &recordingTransport{body: `{"order":{"id":1}}`}
	client := newTestClient(tr)

	resp, err := client.Execute(context.Background(), &exchange.Endpoint{Path: "buyorder", ResponseField: "order"})
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(resp.Payload()))

	var order struct {
		ID int `json:"id"`
	}
	require.NoError(t, resp.Decode(&order))
	assert.Equal(t, 1, order.ID)
}

func TestExecuteReturnsFullBodyWithoutResponseField(t *testing.T) {
	tr := &recordingTransport{body: `{"order":{"id":1}}`}
	client := newTestClient(tr)

	resp, err := client.Execute(context.Background(), &exchange.Endpoint{Path: "buyorder"})
	require.NoError(t, err)
	assert.Equal(t, `{"order":{"id":1}}`, string(resp.Payload()))

	resp, err = client.Execute(context.Background(), &exchange.Endpoint{Path: "buyorder", ResponseField: "missing"})
	require.NoError(t, err)
	assert.Equal(t, `{"order":{"id":1}}`, string(resp.Payload()))
}

func TestExecutePassesThroughNonObjectBodies(t *testing.T) {
	for _, body := range []string{`[{"id":1}]`, `not json`, ``} {
		tr := &recordingTransport{body: body}
		client := newTestClient(tr)

		resp, err := client.Execute(context.Background(), &exchange.Endpoint{Path: "crypto-routes", ResponseField: "crypto-routes"})
		require.NoError(t, err)
		assert.Equal(t, body, string(resp.Payload()))
	}
}

func TestExecutePropagatesTransportErrors(t *testing.T) {
	sentinel := errors.New("connection reset by peer")
	tr := &recordingTransport{err: sentinel}
	client := newTestClient(tr)

	resp, err := client.Execute(context.Background(), &exchange.Endpoint{Path: "buyorder"})
	assert.Nil(t, resp)
	assert.Same(t, sentinel, err)

	generic, err := client.Do(context.Background(), &exchange.Endpoint{Path: "buyorder"})
	assert.Nil(t, generic)
	assert.Same(t, sentinel, err)
}

// newCoinsServer stands in for coins.ph. It recomputes the signature from what actually arrived on
// the wire and rejects mismatches the way the real service does.
func newCoinsServer(t *testing.T, respond func(w http.ResponseWriter, r *http.Request, body []byte)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		fullURL := "http://" + r.Host + r.URL.RequestURI()
		nonce := r.Header.Get(NonceHeader)

		message := nonce + fullURL
		if len(body) > 0 {
			message += string(body)
		}

		if r.Header.Get(KeyHeader) != testKey || r.Header.Get(SignatureHeader) != expectedSignature(testSecret, message) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":["invalid signature"]}`))

			return
		}

		respond(w, r, body)
	}))

	t.Cleanup(srv.Close)

	return srv
}

func TestRoundTripAgainstServer(t *testing.T) {
	srv := newCoinsServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v3/payment-requests/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"payer_contact_info":"payer@example.com","receiving_account":"acc","amount":"99.5","message":"lunch"}`, string(body))

		_, _ = w.Write([]byte(`{"payment-request":{"id":"pr-1","amount":"99.5"}}`))
	})

	client := NewClient(testKey, testSecret, WithHost(srv.URL))

	resp, err := client.CreatePaymentRequest(context.Background(), &PaymentRequest{
		PayerContactInfo: "payer@example.com",
		ReceivingAccount: "acc",
		Amount:           decimal.RequireFromString("99.5"),
		Message:          "lunch",
	})
	require.NoError(t, err)

	var pr struct {
		ID     string          `json:"id"`
		Amount decimal.Decimal `json:"amount"`
	}
	require.NoError(t, resp.Decode(&pr))
	assert.Equal(t, "pr-1", pr.ID)
	assert.True(t, pr.Amount.Equal(decimal.RequireFromString("99.5")))
	assert.NotNil(t, resp.Raw())
}

func TestRoundTripGETWithQuery(t *testing.T) {
	srv := newCoinsServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/d/api/payin-outlets/", r.URL.Path)
		assert.Equal(t, url.Values{"region": {"PH"}}, r.URL.Query())
		assert.Empty(t, body)

		_, _ = w.Write([]byte(`{"payin-outlets":[{"id":"7eleven"}]}`))
	})

	client := NewClient(testKey, testSecret, WithHost(srv.URL))

	resp, err := client.PayinOutlets(context.Background(), Params{"region": "PH"})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"7eleven"}]`, string(resp.Payload()))
}

func TestRoundTripNon2xxIsHTTPError(t *testing.T) {
	srv := newCoinsServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":["no such transfer"]}`))
	})

	client := NewClient(testKey, testSecret, WithHost(srv.URL))

	resp, err := client.Transfers(context.Background(), Params{"id": "nope"})
	assert.Nil(t, resp)

	var httpErr *exchange.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode())
	assert.Equal(t, []string{"no such transfer"}, httpErr.Errors())
}

func TestRoundTripWrongSecretIsRejected(t *testing.T) {
	srv := newCoinsServer(t, func(w http.ResponseWriter, r *http.Request, body []byte) {
		t.Error("request with a bad signature must not be accepted")
	})

	client := NewClient(testKey, "wrong", WithHost(srv.URL))

	_, err := client.CryptoRoutes(context.Background())

	var httpErr *exchange.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode())
}

func TestRoundTripNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(testKey, testSecret, WithHost(srv.URL))

	_, err := client.CryptoRoutes(context.Background())
	require.Error(t, err)

	var httpErr *exchange.HTTPError
	assert.False(t, errors.As(err, &httpErr))
}
