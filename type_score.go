package taxonomy

import "encoding/json"

// Score is an optional numeric rating. Rating agencies rarely cover a whole
// portfolio, so the absence of a score is meaningful and must not be
// mistaken for a zero: an unset Score fails every threshold check.
type Score struct {
	value float64
	set   bool
}

// S returns a set Score holding value.
func S[T float32 | float64 | int | int32 | int64](value T) Score {
	return Score{value: float64(value), set: true}
}

// IsSet reports whether the score carries a value.
func (s Score) IsSet() bool { return s.set }

// Value returns the score value, 0 when unset.
func (s Score) Value() float64 { return s.value }

// AtLeast reports whether the score is set and >= min.
func (s Score) AtLeast(min float64) bool { return s.set && s.value >= min }

// AtMost reports whether the score is set and <= max.
func (s Score) AtMost(max float64) bool { return s.set && s.value <= max }

// Within reports whether the score is unset or within [lo, hi].
// Used for scale validation, where an absent score is always valid.
func (s Score) Within(lo, hi float64) bool {
	return !s.set || (s.value >= lo && s.value <= hi)
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.set {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

func (s *Score) UnmarshalJSON(b []byte) error {
	var v *float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == nil {
		*s = Score{}
		return nil
	}
	*s = Score{value: *v, set: true}
	return nil
}
