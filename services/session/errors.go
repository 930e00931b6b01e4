package session

import "errors"

var (
	// ErrSessionNotFound means the session expired or never existed.
	ErrSessionNotFound = errors.New("editing session not found or expired")
	// ErrWrongDevice means a selection event arrived for the other input
	// modality; the modality is fixed when the session starts.
	ErrWrongDevice = errors.New("selection event does not match session device class")
	// ErrUnknownWeekday means the request named a day outside monday..sunday.
	ErrUnknownWeekday = errors.New("unknown weekday")
)
