package coins

import "fmt"

// ConfigError reports missing or unusable client configuration. It is returned before any request
// is sent.
type ConfigError struct {
	Field string
}

func (o *ConfigError) Error() string {
	return fmt.Sprintf("coins.ph client is not configured: missing API %s", o.Field)
}

// APIError implements the exchange.APIError interface for errors that coins.ph embeds in the
// "errors" array of an otherwise successful response.
type APIError struct {
	statusCode int
	messages   []string
}

func (o *APIError) Code() int {
	return o.statusCode
}

// Message returns the first error message reported by the API.
func (o *APIError) Message() string {
	if len(o.messages) == 0 {
		return ""
	}

	return o.messages[0]
}

// Messages returns every error message reported by the API, in order.
func (o *APIError) Messages() []string {
	return o.messages
}

func (o *APIError) Error() string {
	return o.Message()
}
