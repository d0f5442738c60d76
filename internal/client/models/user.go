// Package models defines client-side data models used by the PayOrbit CLI.
package models

// Profile describes the authenticated user as reported by the server.
// It is read-only from the client's perspective and replaced wholesale
// on every successful login.
type Profile struct {
	Username         string `json:"username"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Email            string `json:"email,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
}

// Session couples the opaque session token with the profile it belongs to.
// Both are set on login and destroyed together on logout or invalidation;
// a token without a profile (or vice versa) is an invalid state.
type Session struct {
	Token string
	User  *Profile
}
