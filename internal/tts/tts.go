// Package tts synthesizes speech audio from text.
package tts

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultVoice  = "en-US-AriaNeural"
	DefaultRate   = "+0%"
	DefaultVolume = "+0%"
)

var (
	// ErrEmptyText is returned for empty or whitespace-only input.
	ErrEmptyText = errors.New("text cannot be empty")
	// ErrInvalidParameter is returned for malformed rate/volume values.
	ErrInvalidParameter = errors.New("invalid synthesis parameter")
)

// Request carries synthesis parameters. Rate and Volume are signed
// percentage strings between -100% and +100%, e.g. "+10%" or "-25%".
type Request struct {
	Text   string `json:"text"`
	Voice  string `json:"voice"`
	Rate   string `json:"rate"`
	Volume string `json:"volume"`
}

// Synthesizer produces an MP3 audio buffer for a piece of text.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}

// SynthesisError wraps a backend failure. The caller cannot correct it,
// so the API layer maps it to a server error.
type SynthesisError struct {
	Err error
}

func (e *SynthesisError) Error() string { return fmt.Sprintf("synthesize speech: %v", e.Err) }
func (e *SynthesisError) Unwrap() error { return e.Err }

// Validate checks the request and fills in defaults for unset fields.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	if r.Voice == "" {
		r.Voice = DefaultVoice
	}
	if r.Rate == "" {
		r.Rate = DefaultRate
	}
	if r.Volume == "" {
		r.Volume = DefaultVolume
	}
	if err := validatePercentage(r.Rate, "rate"); err != nil {
		return err
	}
	return validatePercentage(r.Volume, "volume")
}

func validatePercentage(value, name string) error {
	if !strings.HasSuffix(value, "%") {
		return fmt.Errorf("%w: %s must be a percentage value such as \"+20%%\", got %q", ErrInvalidParameter, name, value)
	}
	n, err := strconv.Atoi(strings.TrimSuffix(value, "%"))
	if err != nil {
		return fmt.Errorf("%w: %s must be a whole-number percentage, got %q", ErrInvalidParameter, name, value)
	}
	if n < -100 || n > 100 {
		return fmt.Errorf("%w: %s must be between -100%% and +100%%, got %q", ErrInvalidParameter, name, value)
	}
	return nil
}
