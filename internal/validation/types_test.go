package validation

import (
	"encoding/json"
	"testing"
)

func TestNumber_Unmarshal(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"plain number", `12.5`, 12.5, false},
		{"quoted number", `"12.5"`, 12.5, false},
		{"integer literal", `40`, 40, false},
		{"zero", `0`, 0, false},
		{"null leaves zero value", `null`, 0, false},
		{"non-numeric string", `"abc"`, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tc.input), &n)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Float() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, n.Float())
			}
		})
	}
}

func TestInteger_Unmarshal(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"plain integer", `7`, 7, false},
		{"quoted integer", `"7"`, 7, false},
		{"zero", `0`, 0, false},
		{"fractional rejected", `7.5`, 0, true},
		{"non-numeric string", `"x"`, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var i Integer
			err := json.Unmarshal([]byte(tc.input), &i)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if i.Int() != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, i.Int())
			}
		})
	}
}

func TestDateTime_Unmarshal(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"canonical", `"2026-03-15 10:30:00"`, "2026-03-15 10:30:00", false},
		{"iso with seconds", `"2026-03-15T10:30:00"`, "2026-03-15 10:30:00", false},
		{"iso without seconds", `"2026-03-15T10:30"`, "2026-03-15 10:30:00", false},
		{"date only", `"2026-03-15"`, "2026-03-15 00:00:00", false},
		{"rfc3339", `"2026-03-15T10:30:00Z"`, "2026-03-15 10:30:00", false},
		{"garbage", `"pronto"`, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d DateTime
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, d.String())
			}
		})
	}
}

func TestDateTime_Time(t *testing.T) {
	var d DateTime
	if err := json.Unmarshal([]byte(`"2026-03-15T10:30:00"`), &d); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	parsed, err := d.Time()
	if err != nil {
		t.Fatalf("Time returned error: %v", err)
	}
	if parsed.Format(CanonicalDateTimeLayout) != "2026-03-15 10:30:00" {
		t.Fatalf("round trip mismatch: %v", parsed)
	}
}
