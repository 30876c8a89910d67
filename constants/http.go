package constants

const (
	HeaderRequestIDKey    = "X-Request-ID"
	HeaderLoginTokenKey   = "X-Noders-JWT-Token"
	HeaderRefreshTokenKey = "X-Noders-Refresh-Token"
)

const (
	ContextUserClaimsKey = "X-Noders-User-Claims"
)
