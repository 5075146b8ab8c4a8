// Package keyring stores remembered account PINs in the OS keyring so
// repeated invocations do not need --pin. Entries are keyed by account
// id under a single service name.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const service = "dailyflow"

var (
	// ErrNotFound is returned when no PIN is stored for the account.
	ErrNotFound = errors.New("no PIN stored in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetPIN retrieves the remembered PIN for an account.
func GetPIN(accountID string) (string, error) {
	pin, err := keyring.Get(service, accountID)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return pin, nil
}

// SetPIN remembers an account's PIN.
func SetPIN(accountID, pin string) error {
	if pin == "" {
		return errors.New("PIN cannot be empty")
	}
	if err := keyring.Set(service, accountID, pin); err != nil {
		return fmt.Errorf("failed to store PIN in keyring: %w", err)
	}
	return nil
}

// DeletePIN forgets an account's PIN. Absent entries are not an error.
func DeletePIN(accountID string) error {
	err := keyring.Delete(service, accountID)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete PIN from keyring: %w", err)
	}
	return nil
}
