package identity

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/mindtrackhq/mindtrack/internal/constants"
)

var (
	// ErrTokenNotFound is returned when no refresh token is stored.
	ErrTokenNotFound = errors.New("refresh token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// tokenStore persists the refresh token between runs.
type tokenStore interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// keyringStore keeps the refresh token in the OS keyring.
type keyringStore struct{}

func (keyringStore) Get() (string, error) {
	token, err := keyring.Get(constants.AppName, constants.DefaultKeyringKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

func (keyringStore) Set(token string) error {
	if token == "" {
		return errors.New("refresh token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringKey, token); err != nil {
		return fmt.Errorf("failed to store refresh token in keyring: %w", err)
	}
	return nil
}

func (keyringStore) Delete() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete refresh token from keyring: %w", err)
	}
	return nil
}
