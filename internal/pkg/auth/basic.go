package auth

import (
	"encoding/base64"
	"errors"
	"strings"
)

// Basic credential extraction errors
var (
	ErrMissingAuthHeader  = errors.New("authorization header missing")
	ErrInvalidBasicFormat = errors.New("invalid basic authorization format")
)

// ExtractBasicCredentials parses an Authorization header using the Basic
// scheme and returns the decoded identifier/secret pair. The identifier may
// not contain a colon; everything after the first colon is the secret.
func ExtractBasicCredentials(authHeader string) (string, string, error) {
	if authHeader == "" {
		return "", "", ErrMissingAuthHeader
	}

	const prefix = "Basic "
	if len(authHeader) < len(prefix) || !strings.EqualFold(authHeader[:len(prefix)], prefix) {
		return "", "", ErrInvalidBasicFormat
	}

	decoded, err := base64.StdEncoding.DecodeString(authHeader[len(prefix):])
	if err != nil {
		return "", "", ErrInvalidBasicFormat
	}

	identifier, secret, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", ErrInvalidBasicFormat
	}

	return identifier, secret, nil
}
