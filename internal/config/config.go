package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the parameters file lives, relative to the working directory.
const DefaultPath = "parameters.json"

const (
	DefaultDialSymbol       Symbol = '*'
	DefaultSecondHandSymbol Symbol = 's'
	DefaultMinuteHandSymbol Symbol = 'm'
	DefaultHourHandSymbol   Symbol = 'H'

	DefaultDialRadius       = 0.9
	DefaultSecondHandLength = 0.8
	DefaultMinuteHandLength = 0.7
	DefaultHourHandLength   = 0.5
)

// Parameters controls how the clock is drawn. Radii and lengths are
// fractions of the largest radius that fits the terminal and are not range-checked.
type Parameters struct {
	DialSymbol       Symbol `json:"dialSymbol" yaml:"dialSymbol"`
	SecondHandSymbol Symbol `json:"secondHandSymbol" yaml:"secondHandSymbol"`
	MinuteHandSymbol Symbol `json:"minuteHandSymbol" yaml:"minuteHandSymbol"`
	HourHandSymbol   Symbol `json:"hourHandSymbol" yaml:"hourHandSymbol"`

	DialRadius       float64 `json:"dialRadius" yaml:"dialRadius"`
	SecondHandLength float64 `json:"secondHandLength" yaml:"secondHandLength"`
	MinuteHandLength float64 `json:"minuteHandLength" yaml:"minuteHandLength"`
	HourHandLength   float64 `json:"hourHandLength" yaml:"hourHandLength"`

	Smooth         bool `json:"smooth" yaml:"smooth"`
	RenderLastLine bool `json:"renderLastLine" yaml:"renderLastLine"`
}

func DefaultParameters() *Parameters {
	return &Parameters{
		DialSymbol:       DefaultDialSymbol,
		SecondHandSymbol: DefaultSecondHandSymbol,
		MinuteHandSymbol: DefaultMinuteHandSymbol,
		HourHandSymbol:   DefaultHourHandSymbol,
		DialRadius:       DefaultDialRadius,
		SecondHandLength: DefaultSecondHandLength,
		MinuteHandLength: DefaultMinuteHandLength,
		HourHandLength:   DefaultHourHandLength,
		Smooth:           true,
		RenderLastLine:   true,
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Decode parses data on top of the defaults, so missing fields keep their
// default values.
func Decode(data []byte, asYAML bool) (*Parameters, error) {
	p := DefaultParameters()
	var err error
	if asYAML {
		err = yaml.Unmarshal(data, p)
	} else {
		err = json.Unmarshal(data, p)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func Encode(p *Parameters, asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(p)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Load reads parameters from path. The codec is picked by file extension:
// .yaml and .yml are YAML, anything else is JSON.
func Load(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Decode(data, isYAML(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

func Save(path string, p *Parameters) error {
	data, err := Encode(p, isYAML(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Source says where a LoadResult's parameters came from.
type Source int

const (
	// SourceFile means the file existed and parsed.
	SourceFile Source = iota
	// SourceCreated means the file was missing and has been written with defaults.
	SourceCreated
	// SourceDefaults means the file could not be read, parsed or created.
	SourceDefaults
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceCreated:
		return "created"
	case SourceDefaults:
		return "defaults"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// LoadResult is the outcome of LoadOrCreate. Parameters is never nil.
// Err is set only when Source is SourceDefaults.
type LoadResult struct {
	Parameters *Parameters
	Source     Source
	Err        error
}

// LoadOrCreate loads path, writing the defaults there first if it does not
// exist. Every failure falls back to the defaults; the caller decides
// whether Err is worth reporting.
func LoadOrCreate(path string) LoadResult {
	p, err := Load(path)
	switch {
	case err == nil:
		return LoadResult{Parameters: p, Source: SourceFile}
	case errors.Is(err, fs.ErrNotExist):
		p = DefaultParameters()
		if err := Save(path, p); err != nil {
			return LoadResult{Parameters: p, Source: SourceDefaults, Err: err}
		}
		return LoadResult{Parameters: p, Source: SourceCreated}
	default:
		return LoadResult{Parameters: DefaultParameters(), Source: SourceDefaults, Err: err}
	}
}
