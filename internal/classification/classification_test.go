package classification

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Classification
		ok   bool
	}{
		{"gc", GC, true},
		{"GC", GC, true},
		{" points ", Points, true},
		{"mountain", Mountain, true},
		{"youth", Youth, true},
		{"team", Team, true},
		{"sprint", None, false},
		{"", None, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Parse(%q) = (%v, %v), expected (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestString(t *testing.T) {
	if GC.String() != "gc" {
		t.Errorf("GC.String() = %q, expected %q", GC.String(), "gc")
	}
	if None.String() != "" {
		t.Errorf("None.String() = %q, expected empty", None.String())
	}
}

func TestCodes(t *testing.T) {
	// Codes are wire values, they must not drift.
	if int(GC) != 1 || int(Youth) != 2 || int(Points) != 3 || int(Mountain) != 4 || int(Team) != 5 {
		t.Errorf("classification codes changed: gc=%d youth=%d points=%d mountain=%d team=%d",
			int(GC), int(Youth), int(Points), int(Mountain), int(Team))
	}
}
