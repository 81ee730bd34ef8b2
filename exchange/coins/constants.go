package coins

const (
	// Authentication headers. The names are fixed by the coins.ph wire contract and are sent with
	// exactly this casing.
	SignatureHeader = "ACCESS_SIGNATURE"
	KeyHeader       = "ACCESS_KEY"
	NonceHeader     = "ACCESS_NONCE"

	DefaultHost = "https://coins.ph/"

	// API base paths. Endpoints that do not name one use LegacyVersion.
	LegacyVersion = "d/api"
	V2            = "api/v2"
	V3            = "api/v3"
)
