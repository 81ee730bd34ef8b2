package coins

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// lastTick is the most recent nonce tick (unix nanoseconds) handed out by any signer in the
// process.
var lastTick atomic.Int64

// Envelope holds the authentication values for exactly one outgoing request.
type Envelope struct {
	Nonce     string
	Signature string
}

// Signer produces authentication envelopes for outgoing requests. It performs no I/O and holds no
// state beyond the secret, so a single signer may be shared between goroutines.
type Signer struct {
	secret []byte
}

// NewSigner returns a signer keyed by the provided API secret. An empty secret is a configuration
// error.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, &ConfigError{Field: "secret"}
	}

	return &Signer{
		secret: []byte(secret),
	}, nil
}

// Sign generates a fresh nonce and signs the request described by the provided URL and body. The
// URL must be the complete, host-qualified URL including its query string. A nil body means the
// request carries no payload; otherwise it must be exactly the bytes that will be transmitted.
func (o *Signer) Sign(url string, body []byte) (Envelope, error) {
	if o == nil || len(o.secret) == 0 {
		return Envelope{}, &ConfigError{Field: "secret"}
	}

	nonce := Nonce()

	return Envelope{
		Nonce:     nonce,
		Signature: signature(o.secret, nonce, url, body),
	}, nil
}

// Sign is a convenience wrapper around NewSigner and Signer.Sign.
func Sign(secret string, url string, body []byte) (Envelope, error) {
	signer, err := NewSigner(secret)
	if err != nil {
		return Envelope{}, err
	}

	return signer.Sign(url, body)
}

// Nonce returns a new nonce as a decimal string. Nonces are derived from the wall clock (the
// millisecond timestamp scaled by 10^13, plus the sub-millisecond nanoseconds scaled by 10^7) and
// strictly increase across every call made within the process, even when the clock has not
// advanced.
func Nonce() string {
	return nonceFromTick(nextTick(time.Now().UnixNano()))
}

func nextTick(now int64) int64 {
	for {
		last := lastTick.Load()

		next := now
		if next <= last {
			next = last + 1
		}

		if lastTick.CompareAndSwap(last, next) {
			return next
		}
	}
}

// nonceFromTick maps unix nanoseconds onto the nonce scale. The result exceeds 64 bits.
func nonceFromTick(tick int64) string {
	millis := decimal.NewFromInt(tick / int64(time.Millisecond)).Shift(13)
	subMillis := decimal.NewFromInt(tick % int64(time.Millisecond)).Shift(7)

	return millis.Add(subMillis).String()
}

// signature is the lowercase hex HMAC-SHA256 of nonce + url [+ body].
func signature(secret []byte, nonce string, url string, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(nonce))
	mac.Write([]byte(url))

	if body != nil {
		mac.Write(body)
	}

	return hex.EncodeToString(mac.Sum(nil))
}

// CanonicalJSON serializes a request body into the exact bytes that are both signed and
// transmitted. Nil yields nil (no body), as does a typed nil such as (*TransferRequest)(nil). Byte
// slices and json.RawMessage values are taken to be pre-serialized JSON and are returned untouched.
// Everything else is encoded with encoding/json without HTML escaping and without a trailing newline;
// struct fields keep their declared order and map keys are sorted.
func CanonicalJSON(v interface{}) ([]byte, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return []byte(b), nil
	case []byte:
		return b, nil
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "failed to serialize request body")
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
