package config

import "errors"

var (
	// ErrInvalidSymbol indicates a symbol field that is not exactly one character.
	ErrInvalidSymbol = errors.New("config: symbol must be a single character")
)
