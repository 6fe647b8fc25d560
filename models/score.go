package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
)

// Score is a session score in percent. Sessions recorded with zero total
// cards have an undefined score (NaN or Inf); encoding/json refuses to
// marshal those, and most SQL drivers reject them as parameters, so Score
// maps the undefined case to JSON null and SQL NULL. Callers must not
// mistake a null score for 0.
type Score float64

// Defined reports whether the score is a real number.
func (s Score) Defined() bool {
	f := float64(s)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Defined() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(s))
}

func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Score(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = Score(f)
	return nil
}

// Value implements driver.Valuer; undefined scores are stored as NULL.
func (s Score) Value() (driver.Value, error) {
	if !s.Defined() {
		return nil, nil
	}
	return float64(s), nil
}

// Scan implements sql.Scanner; NULL scans back as NaN.
func (s *Score) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = Score(math.NaN())
	case float64:
		*s = Score(v)
	case int64:
		*s = Score(v)
	default:
		return fmt.Errorf("cannot scan %T into Score", value)
	}
	return nil
}
