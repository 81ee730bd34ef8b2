package coins

import (
	"encoding/json"
	"net/http"

	"github.com/ardeearam/coins-ph-go/exchange"
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// Response implements the exchange.Response interface for wrapped responses from the coins.ph API.
type Response struct {
	response *http.Response
	body     []byte
	payload  []byte
}

func (o *Response) Raw() *http.Response {
	return o.response
}

func (o *Response) Body() []byte {
	return o.body
}

func (o *Response) Payload() []byte {
	return o.payload
}

// Decode unmarshals the payload into the provided value.
func (o *Response) Decode(v interface{}) error {
	if len(o.payload) == 0 {
		return errors.New("response has no payload to decode")
	}

	return errors.Wrap(json.Unmarshal(o.payload, v), "failed to decode response payload")
}

// wrapResponse packs a transport response and, if the body is a JSON object, checks it for embedded
// API errors and unwraps the named response field. Bodies that are not JSON objects are passed
// through whole.
func wrapResponse(tr *exchange.TransportResponse, responseField string) (*Response, error) {
	wrappedResp := &Response{
		response: tr.Raw,
		body:     tr.Body,
		payload:  tr.Body,
	}

	if len(tr.Body) == 0 {
		return wrappedResp, nil
	}

	v, err := fastjson.ParseBytes(tr.Body)
	if err != nil || v.Type() != fastjson.TypeObject {
		return wrappedResp, nil
	}

	//
	// Check the response for API errors. coins.ph sometimes reports failures with a 2xx status.
	//
	if msgs := exchange.ErrorMessagesOf(v); len(msgs) > 0 {
		return wrappedResp, &APIError{
			statusCode: tr.StatusCode,
			messages:   msgs,
		}
	}

	if responseField != "" {
		if field := v.Get(responseField); field != nil {
			wrappedResp.payload = field.MarshalTo(nil)
		}
	}

	return wrappedResp, nil
}
