package exchange

import "net/http"

// Response generically provides an interface to an object that represents a response from a call to
// an exchange's API endpoint.
type Response interface {

	//
	// Raw provides the raw HTTP response from the endpoint call that was made. Its body has already
	// been consumed.
	//
	Raw() *http.Response

	//
	// Body provides the complete response body that was received.
	//
	Body() []byte

	//
	// Payload provides the interesting part of the response body (e.g. the value of a wrapping
	// field), or the complete body if the endpoint does not wrap its payload.
	//
	Payload() []byte
}
