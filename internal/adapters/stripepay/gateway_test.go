package stripepay_test

import (
	"testing"

	"tripdesk/internal/adapters/stripepay"
)

func TestIntentID(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"pi_3abc_secret_xyz", "pi_3abc", false},
		{"  pi_1_secret_s  ", "pi_1", false},
		{"", "", true},
		{"no-separator", "", true},
		{"_secret_only", "", true},
	}
	for _, c := range cases {
		got, err := stripepay.IntentID(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", c.in)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("%q: got (%q,%v) want %q", c.in, got, err, c.want)
		}
	}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{4500, 450000},
		{99.99, 9999},
		{0.1, 10},
		{1234.565, 123457}, // rounds, never truncates
	}
	for _, c := range cases {
		if got := stripepay.MinorUnits(c.in); got != c.want {
			t.Fatalf("%v: got %d want %d", c.in, got, c.want)
		}
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := stripepay.New("", "inr"); err == nil {
		t.Fatalf("missing API key must be rejected")
	}
}
