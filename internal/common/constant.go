// Package common contains shared constants and sentinel errors used across
// NoteKeeper components.
package common

// AuthTokenHeaderName is the HTTP header used to carry the session token
// on authenticated requests, and to echo a freshly issued token on login.
const AuthTokenHeaderName = "auth-token"
