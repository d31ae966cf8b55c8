// Package utils provides small helpers shared by the server and swiftctl:
// typed context keys, JSON response writing, the resty client, JWT token
// generation and validation, and UUIDv7 generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which the auth middleware stores the "sub"
// claim of a verified token.
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, "operator")
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext returns the authenticated token subject.
// ok is false when the request was not authenticated.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok
}
