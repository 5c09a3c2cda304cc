package strategy

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// ByName builds a strategy from its name. "a+b" builds a Fallback of a and b;
// longer chains nest to the right.
func ByName(name string, options ...Option) (Strategy, error) {
	if first, rest, ok := strings.Cut(name, "+"); ok {
		a, err := ByName(first, options...)
		if err != nil {
			return nil, err
		}
		b, err := ByName(rest, options...)
		if err != nil {
			return nil, err
		}
		return NewFallback(a, b, options...), nil
	}

	switch strings.TrimSpace(name) {
	case "capture":
		return NewMaximizeCapture(options...), nil
	case "corners":
		return NewPreferCorners(options...), nil
	case "avoid":
		return NewAvoidNearCorners(options...), nil
	case "minimax":
		return NewMinimax(options...), nil
	case "random":
		return NewRandom(options...), nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}
