package codehash

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("code hashing failed")
	ErrMismatch      = errors.New("code does not match")
	ErrEmptyCode     = errors.New("empty code")
)

// Cost is the bcrypt cost used for verification codes.
const Cost = bcrypt.MinCost

func Hash(code string) (string, error) {
	if code == "" {
		return "", ErrEmptyCode
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(code), Cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashed), nil
}

func Compare(hashed, code string) error {
	if hashed == "" || code == "" {
		return ErrEmptyCode
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(code))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
