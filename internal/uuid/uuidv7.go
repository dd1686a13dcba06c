package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7. The leading 48 bits carry the Unix millisecond
// timestamp, so identifiers created later sort after earlier ones, which keeps
// the serialized collections readable when inspected by hand.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the entropy source fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates and canonicalises a UUID string
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
