package exchange

import "net/url"

// Method is an enum-like string type that represents the HTTP verbs used by exchange REST APIs.
type Method string

const (
	GET  Method = "GET"
	POST Method = "POST"
	PUT  Method = "PUT"
)

func (o Method) String() string {
	return string(o)
}

// Endpoint describes a single call against an exchange's REST API: where it lives, how it is
// invoked, and which part of the response holds the interesting payload. Endpoints are built fresh
// for every call and are consumed once by a Client.
type Endpoint struct {
	// Path is the endpoint path relative to the API version, without leading or trailing slashes
	// (e.g. "buyorder" or "transfers/abc123").
	Path string

	// Method is the HTTP verb. The zero value means GET.
	Method Method

	// Version is the API base path (e.g. "api/v3"). The zero value means the exchange's legacy
	// base path.
	Version string

	// Query holds the query string parameters. It may be nil.
	Query url.Values

	// Body is the request payload. Nil means the request carries no body.
	Body interface{}

	// ResponseField names the top-level field of the response body to unwrap. Empty means the
	// whole body is the payload.
	ResponseField string
}

// Verb returns the endpoint's HTTP method, defaulting to GET.
func (o *Endpoint) Verb() Method {
	if o.Method == "" {
		return GET
	}

	return o.Method
}
