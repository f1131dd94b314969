package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short public identifier (booking references, file keys).
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GeneratePassword returns an initial password for admin-created accounts.
func GeneratePassword() string {
	pw, err := gonanoid.Generate(idAlphabet, 12)
	if err != nil {
		return ""
	}
	return pw
}
