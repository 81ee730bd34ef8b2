package exchange

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// HTTPError represents an error due to a non-2xx response from an API endpoint. When dealing with
// exchange APIs, such a response almost always means that something critically wrong has occurred
// (a rejected signature, a stale nonce, an unknown resource).
type HTTPError struct {
	statusCode int
	body       []byte
}

func NewHTTPError(statusCode int, body []byte) *HTTPError {
	return &HTTPError{
		statusCode: statusCode,
		body:       body,
	}
}

func (o *HTTPError) StatusCode() int {
	return o.statusCode
}

// Body returns the raw response body that accompanied the failed response (if there was one).
func (o *HTTPError) Body() []byte {
	return o.body
}

// Errors returns the messages of an "errors" array carried in the response body, or nil if the body
// does not hold one. Non-string entries are returned in their JSON form.
func (o *HTTPError) Errors() []string {
	return ErrorMessages(o.body)
}

func (o *HTTPError) Error() string {
	if msgs := o.Errors(); len(msgs) > 0 {
		return fmt.Sprintf("server responded with a %d status code (%s)", o.statusCode, msgs[0])
	}

	return fmt.Sprintf("server responded with a %d status code", o.statusCode)
}

// ErrorMessages extracts the messages of a top-level "errors" array from the provided JSON
// document. It returns nil when the document is not JSON, is not an object, or has no non-empty
// "errors" array.
func ErrorMessages(body []byte) []string {
	if len(body) == 0 {
		return nil
	}

	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return nil
	}

	return ErrorMessagesOf(v)
}

// ErrorMessagesOf is ErrorMessages for an already parsed document.
func ErrorMessagesOf(v *fastjson.Value) []string {
	if v == nil || v.Type() != fastjson.TypeObject {
		return nil
	}

	errs := v.GetArray("errors")
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(errs))

	for _, e := range errs {
		if e.Type() == fastjson.TypeString {
			msgs = append(msgs, string(e.GetStringBytes()))
		} else {
			msgs = append(msgs, e.String())
		}
	}

	return msgs
}
