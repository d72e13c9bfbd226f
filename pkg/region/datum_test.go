package region

import (
	"encoding/json"
	"math"
	"testing"
)

func TestDatumUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantRate  float64
		wantOK    bool
		wantCount string
	}{
		{"bare number", `0.42`, 0.42, true, Placeholder},
		{"object with both fields", `{"count": 17, "rate": 0.9}`, 0.9, true, "17"},
		{"object with null rate", `{"count": 3, "rate": null}`, 0, false, "3"},
		{"null", `null`, 0, false, Placeholder},
		{"unparsable", `"lots"`, 0, false, Placeholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Datum
			if err := json.Unmarshal([]byte(tt.input), &d); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			rate, ok := d.Norm()
			if ok != tt.wantOK {
				t.Fatalf("Norm() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && rate != tt.wantRate {
				t.Errorf("Norm() = %v, want %v", rate, tt.wantRate)
			}
			if got := d.CountText(); got != tt.wantCount {
				t.Errorf("CountText() = %q, want %q", got, tt.wantCount)
			}
		})
	}
}

func TestDatumNormNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1)} {
		d := RateDatum(v)
		if _, ok := d.Norm(); ok {
			t.Errorf("Norm() on %v should report unknown", v)
		}
		if got := d.RateText(); got != Placeholder {
			t.Errorf("RateText() on %v = %q, want placeholder", v, got)
		}
	}
}

func TestDatumMarshalRoundTrip(t *testing.T) {
	count := int64(5)
	rate := 0.75
	d := CountRate(&count, &rate)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var back Datum
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if back.Count == nil || *back.Count != 5 {
		t.Errorf("round-trip count = %v, want 5", back.Count)
	}
	if got, ok := back.Norm(); !ok || got != 0.75 {
		t.Errorf("round-trip rate = %v, %v; want 0.75", got, ok)
	}
}

func TestDatumUnmarshalTOML(t *testing.T) {
	var d Datum
	if err := d.UnmarshalTOML(map[string]any{"count": int64(9), "rate": 0.3}); err != nil {
		t.Fatalf("UnmarshalTOML error = %v", err)
	}
	if d.CountText() != "9" {
		t.Errorf("CountText() = %q, want 9", d.CountText())
	}
	if rate, ok := d.Norm(); !ok || rate != 0.3 {
		t.Errorf("Norm() = %v, %v; want 0.3", rate, ok)
	}

	var bare Datum
	if err := bare.UnmarshalTOML(0.5); err != nil {
		t.Fatalf("UnmarshalTOML error = %v", err)
	}
	if rate, ok := bare.Norm(); !ok || rate != 0.5 {
		t.Errorf("bare Norm() = %v, %v; want 0.5", rate, ok)
	}
}

func TestRateText(t *testing.T) {
	if got := RateDatum(0.5).RateText(); got != "0.50" {
		t.Errorf("RateText() = %q, want 0.50", got)
	}
}
