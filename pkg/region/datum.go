package region

import (
	"encoding/json"
	"math"
	"strconv"
)

// Datum is the per-region value: either a bare normalized rate or a
// count/rate pair. Both fields are optional; a nil Rate means the value is
// unknown and renders as the fallback color and the "-" placeholder.
type Datum struct {
	Count *int64
	Rate  *float64
}

// RateDatum wraps a bare rate.
func RateDatum(rate float64) Datum {
	return Datum{Rate: &rate}
}

// CountRate builds a composite datum. Either argument may be nil.
func CountRate(count *int64, rate *float64) Datum {
	return Datum{Count: count, Rate: rate}
}

// Norm returns the normalized rate for color and formatting use. The second
// return is false for a missing or non-finite rate.
func (d Datum) Norm() (float64, bool) {
	if d.Rate == nil || math.IsNaN(*d.Rate) || math.IsInf(*d.Rate, 0) {
		return 0, false
	}
	return *d.Rate, true
}

// CountText returns the count formatted for display, or the placeholder
// when the count is unknown.
func (d Datum) CountText() string {
	if d.Count == nil {
		return Placeholder
	}
	return strconv.FormatInt(*d.Count, 10)
}

// RateText returns the rate formatted to two decimals, or the placeholder
// when the rate is unknown.
func (d Datum) RateText() string {
	rate, ok := d.Norm()
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(rate, 'f', 2, 64)
}

// datumJSON is the object wire form of a composite datum.
type datumJSON struct {
	Count *int64   `json:"count"`
	Rate  *float64 `json:"rate"`
}

// UnmarshalJSON accepts either a bare number or a {count, rate} object.
// JSON null and anything unparsable decode to an unknown datum rather than
// failing the whole dataset.
func (d *Datum) UnmarshalJSON(data []byte) error {
	var rate float64
	if err := json.Unmarshal(data, &rate); err == nil {
		d.Count = nil
		d.Rate = &rate
		return nil
	}

	var obj datumJSON
	if err := json.Unmarshal(data, &obj); err == nil {
		d.Count = obj.Count
		d.Rate = obj.Rate
		return nil
	}

	*d = Datum{}
	return nil
}

// MarshalJSON writes the object form when a count is present, otherwise the
// bare rate (or null).
func (d Datum) MarshalJSON() ([]byte, error) {
	if d.Count != nil {
		return json.Marshal(datumJSON{Count: d.Count, Rate: d.Rate})
	}
	if d.Rate == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*d.Rate)
}

// UnmarshalTOML accepts the same shapes from TOML config files: a float, an
// integer, or a table with count and/or rate keys.
func (d *Datum) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case float64:
		d.Rate = &val
	case int64:
		rate := float64(val)
		d.Rate = &rate
	case map[string]any:
		if c, ok := toInt64(val["count"]); ok {
			d.Count = &c
		}
		if r, ok := toFloat(val["rate"]); ok {
			d.Rate = &r
		}
	}
	return nil
}

func toInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case int64:
		return val, true
	case float64:
		return int64(val), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	}
	return 0, false
}

// Dataset maps region names to data. Names without matching geometry are
// skipped by every consumer.
type Dataset map[string]Datum
