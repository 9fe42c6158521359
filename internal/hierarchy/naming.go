package hierarchy

import (
	"fmt"
	"strings"
)

const (
	StrategyNumeric    = "numeric"
	StrategyAlphabetic = "alphabetic"
)

// MaxBatch bounds how many sibling names one batch request may produce.
const MaxBatch = 100

// Strategy describes how a run of sibling names is generated. Numeric ranges
// are zero-padded to at least two digits; alphabetic ranges walk single
// uppercase letters. Prefix is prepended to every name.
type Strategy struct {
	Kind     string `json:"kind"`
	From     int    `json:"from"`
	To       int    `json:"to"`
	FromChar string `json:"fromChar"`
	ToChar   string `json:"toChar"`
	Prefix   string `json:"prefix"`
}

func (s Strategy) Validate() error {
	switch s.Kind {
	case StrategyNumeric:
		if s.From < 0 {
			return validationErrorf("numeric range must start at 0 or above, got %d", s.From)
		}
	case StrategyAlphabetic:
		if !singleUpper(s.FromChar) || !singleUpper(s.ToChar) {
			return validationErrorf("alphabetic bounds must be single uppercase letters, got %q..%q", s.FromChar, s.ToChar)
		}
	default:
		return validationErrorf("unknown naming strategy %q", s.Kind)
	}
	return nil
}

// Count reports how many names Generate would produce, without allocating
// them. Inverted ranges count as zero. Anything wider than MaxBatch is
// reported as MaxBatch+1 so the subtraction cannot overflow on huge bounds.
func (s Strategy) Count() int {
	switch s.Kind {
	case StrategyNumeric:
		if s.From < 0 || s.To < s.From {
			return 0
		}
		if span := s.To - s.From; span >= MaxBatch {
			return MaxBatch + 1
		}
		return s.To - s.From + 1
	case StrategyAlphabetic:
		if !singleUpper(s.FromChar) || !singleUpper(s.ToChar) || s.ToChar[0] < s.FromChar[0] {
			return 0
		}
		return int(s.ToChar[0]-s.FromChar[0]) + 1
	}
	return 0
}

// Generate returns the ordered name sequence for the strategy. An inverted
// range yields an empty slice, not an error, so callers can refuse to submit
// an empty batch.
func (s Strategy) Generate() []string {
	names := []string{}
	switch s.Kind {
	case StrategyNumeric:
		for i := s.From; i <= s.To; i++ {
			names = append(names, s.Prefix+fmt.Sprintf("%02d", i))
		}
	case StrategyAlphabetic:
		if !singleUpper(s.FromChar) || !singleUpper(s.ToChar) {
			return names
		}
		for c := s.FromChar[0]; c <= s.ToChar[0]; c++ {
			names = append(names, s.Prefix+string(c))
		}
	}
	return names
}

func singleUpper(v string) bool {
	return len(v) == 1 && strings.ToUpper(v) == v && v[0] >= 'A' && v[0] <= 'Z'
}
