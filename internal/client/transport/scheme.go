package transport

import "strings"

// Scheme is the Authorization scheme used for an outgoing request.
type Scheme string

const (
	// SchemeBearer is used for structured (JWT-style) tokens.
	SchemeBearer Scheme = "Bearer"
	// SchemeToken is used for every other opaque token.
	SchemeToken Scheme = "Token"
)

// SchemeFor picks the Authorization scheme by inspecting the token's shape:
// a three-part, dot-delimited token is treated as a structured bearer
// credential, anything else as opaque. This coarse heuristic is what lets
// the client talk to both authentication backends without configuration;
// the token is never parsed beyond it.
func SchemeFor(token string) Scheme {
	parts := strings.Split(token, ".")
	if len(parts) == 3 && parts[0] != "" && parts[1] != "" && parts[2] != "" {
		return SchemeBearer
	}
	return SchemeToken
}
