package models

import (
	"errors"
	"fmt"
)

var (
	// ErrBreweryNotFound is matched by every *NotFoundError
	ErrBreweryNotFound = errors.New("brewery not found")

	// ErrInvalidPrice reports a price that was replaced by DefaultBreweryPrice
	ErrInvalidPrice = errors.New("invalid brewery price")

	// ErrNamePoolEmpty is returned when no unused player name is left
	ErrNamePoolEmpty = errors.New("player name pool is empty")
)

// NotFoundError is returned when a player does not own the requested brewery
type NotFoundError struct {
	BreweryID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("player doesn't own a brewery with id %q", e.BreweryID)
}

// Is lets errors.Is match ErrBreweryNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrBreweryNotFound
}
