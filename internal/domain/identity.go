package domain

import (
	"encoding/base64"
	"fmt"
)

// ComputeID derives the document id of an article from its raw link.
// The URL-safe alphabet never yields '/', so the id is usable as a path segment.
// Identity is syntactic: links differing only by a trailing slash or tracking
// parameters map to different ids.
func ComputeID(link string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(link))
}

// LinkFromID reverses ComputeID.
func LinkFromID(id string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return "", fmt.Errorf("decode article id: %w", err)
	}
	return string(raw), nil
}
