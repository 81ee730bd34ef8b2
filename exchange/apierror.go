package exchange

// APIError generically provides an interface to objects that represent a first-class error provided
// in the body of a response from an exchange's API, as opposed to a transport or HTTP failure.
type APIError interface {
	error

	//
	// Code returns the error code associated with the API error. Exchanges that do not provide one
	// report the HTTP status code of the response that carried the error.
	//
	Code() int

	//
	// Message returns the actual error message provided by the API.
	//
	Message() string
}
