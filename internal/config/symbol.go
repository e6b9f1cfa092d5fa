package config

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Symbol is a single character drawn on the canvas. It is stored in the
// parameters file as a one-character string.
type Symbol rune

func (s Symbol) String() string { return string(rune(s)) }

func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Symbol) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	return s.set(str)
}

func (s Symbol) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Symbol) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	return s.set(str)
}

func (s *Symbol) set(str string) error {
	if utf8.RuneCountInString(str) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, str)
	}
	r, _ := utf8.DecodeRuneInString(str)
	*s = Symbol(r)
	return nil
}
