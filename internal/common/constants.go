// Package common contains shared constants and sentinel errors used across
// TruthLens components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token
// on authenticated API requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// MaxImageSizeBytes caps the size of an image accepted for analysis.
const MaxImageSizeBytes = 16 << 20
