package transport

import "strings"

// Class is the endpoint class a request URL falls into. Classification is
// total: every URL maps to exactly one class.
type Class int

const (
	// ClassProtected covers every endpoint not matched below. Requests get
	// an Authorization header and a 401 invalidates the session.
	ClassProtected Class = iota

	// ClassAuthPublic covers login, registration and the password-reset
	// endpoints. Requests never carry an Authorization header and a 401 is
	// an ordinary credential rejection, not a session failure.
	ClassAuthPublic

	// ClassUpload covers the payroll upload endpoints. Requests are
	// authorized like protected ones, but a 401 is left to the caller:
	// uploads fail for reasons unrelated to session validity.
	ClassUpload
)

func (c Class) String() string {
	switch c {
	case ClassAuthPublic:
		return "auth-public"
	case ClassUpload:
		return "upload"
	default:
		return "protected"
	}
}

var authPublicPaths = []string{
	"/auth/login",
	"/auth/register",
	"/auth/forgot-password",
	"/auth/reset-password",
}

// Classify maps a request path to its endpoint class. Recomputed per
// request; no state.
func Classify(path string) Class {
	for _, p := range authPublicPaths {
		if strings.Contains(path, p) {
			return ClassAuthPublic
		}
	}
	if strings.Contains(path, "/uploads") {
		return ClassUpload
	}
	return ClassProtected
}
