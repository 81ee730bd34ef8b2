package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "strings", body: `{"errors":["bad nonce","other"]}`, want: []string{"bad nonce", "other"}},
		{name: "objects", body: `{"errors":[{"field":"amount"}]}`, want: []string{`{"field":"amount"}`}},
		{name: "empty array", body: `{"errors":[]}`, want: nil},
		{name: "not an array", body: `{"errors":"bad nonce"}`, want: nil},
		{name: "no errors", body: `{"order":{}}`, want: nil},
		{name: "array body", body: `["bad nonce"]`, want: nil},
		{name: "not json", body: `<html>502</html>`, want: nil},
		{name: "empty", body: ``, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessages([]byte(tt.body)))
		})
	}
}

func TestHTTPError(t *testing.T) {
	err := NewHTTPError(401, []byte(`{"errors":["invalid signature"]}`))

	assert.Equal(t, 401, err.StatusCode())
	assert.Equal(t, []string{"invalid signature"}, err.Errors())
	assert.EqualError(t, err, "server responded with a 401 status code (invalid signature)")

	bare := NewHTTPError(502, nil)

	assert.Nil(t, bare.Errors())
	assert.Nil(t, bare.Body())
	assert.EqualError(t, bare, "server responded with a 502 status code")
}

func TestEndpointVerbDefaultsToGET(t *testing.T) {
	assert.Equal(t, GET, (&Endpoint{}).Verb())
	assert.Equal(t, PUT, (&Endpoint{Method: PUT}).Verb())
}
