package scoring

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      int
		expected float64
	}{
		{"zero", 0, 0},
		{"negative", -500, 0},
		{"low tier midpoint", 1000, 100},
		{"first boundary", 2000, 200},
		{"basic tier midpoint", 3500, 300},
		{"second boundary", 5000, 400},
		{"good tier midpoint", 7500, 500},
		{"third boundary", 10000, 600},
		{"great tier midpoint", 12500, 700},
		{"fourth boundary", 15000, 800},
		{"best tier midpoint", 20000, 875},
		{"top boundary", 25000, 950},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if diff := got - tt.expected; diff > 0.001 || diff < -0.001 {
				t.Errorf("Normalize(%d) = %.3f, expected %.3f", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizeLogTail(t *testing.T) {
	// Above the top tier the curve flattens but keeps climbing
	at26k := Normalize(26000)
	if at26k <= 950 {
		t.Errorf("expected score above 950 past the knee, got %.3f", at26k)
	}
	at100k := Normalize(100000)
	if at100k <= at26k {
		t.Error("expected log tail to keep increasing")
	}
	if at100k > 1000 {
		t.Errorf("expected tail capped at 1000, got %.3f", at100k)
	}

	// Even absurd raw scores stay within the display scale
	if got := Normalize(1 << 40); got > 1000 {
		t.Errorf("expected hard cap at 1000, got %.3f", got)
	}
}

func TestNormalizeMonotonic(t *testing.T) {
	prev := Normalize(0)
	for raw := 100; raw <= 50000; raw += 100 {
		cur := Normalize(raw)
		if cur < prev {
			t.Fatalf("normalization decreased at raw=%d: %.3f < %.3f", raw, cur, prev)
		}
		prev = cur
	}
}
