package exchange

import "context"

// Client generically provides an interface to an object that can be used to interact with an
// exchange's regular REST API. Normally, this is the client used to do things like place orders,
// move funds, and look up account data.
//
// Whenever an endpoint fails – whether due to a system failure, an HTTP error, or an API error –
// the error component of the response will be non-nil and, if at all possible, the response payload
// that was received will be returned.
type Client interface {

	//
	// Do performs a single authenticated call described by the provided endpoint. Exactly one
	// attempt is made; callers own any retry policy.
	//
	Do(ctx context.Context, endpoint *Endpoint) (Response, error)
}
