package extract

import "testing"

func TestBoilerplateThreshold(t *testing.T) {
	tests := []struct {
		index, total int
		want         float64
	}{
		{0, 1, 0.5},
		{2, 3, 0.5},
		{0, 5, 0.1},
		{2, 5, 0.33},
		{4, 5, 0.1},
	}

	for _, tt := range tests {
		got := boilerplateThreshold(tt.index, tt.total)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("boilerplateThreshold(%d, %d) = %f, want %f", tt.index, tt.total, got, tt.want)
		}
	}
}

func TestIsBoilerplate(t *testing.T) {
	tests := []struct {
		name      string
		paragraph string
		want      bool
	}{
		{"legal footer", "Copyright 2024. All rights reserved.", true},
		{"no letters", "  --- 42 ---  ", true},
		{"prose", "The quick brown fox jumps over the lazy dog.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBoilerplate(tt.paragraph, 1, 3); got != tt.want {
				t.Errorf("isBoilerplate(%q) = %v, want %v", tt.paragraph, got, tt.want)
			}
		})
	}

	if isBoilerplate("Copyright", 5, 3) {
		t.Error("isBoilerplate with out-of-range index should be false")
	}
}

func TestDropBoilerplate(t *testing.T) {
	text := "Share this page. Follow us.\n\n" +
		"Gophers dig long tunnels under the meadow.\n\n" +
		"They eat roots and bulbs all summer.\n\n" +
		"Winter slows them down considerably.\n\n" +
		"Copyright 2024 Example. All rights reserved."

	want := "Gophers dig long tunnels under the meadow.\n\n" +
		"They eat roots and bulbs all summer.\n\n" +
		"Winter slows them down considerably."

	if got := dropBoilerplate(text); got != want {
		t.Errorf("dropBoilerplate() = %q, want %q", got, want)
	}

	onlyChrome := "Privacy policy\n\nPrivacy policy and terms"
	if got := dropBoilerplate(onlyChrome); got != onlyChrome {
		t.Errorf("dropBoilerplate(%q) = %q, want input unchanged", onlyChrome, got)
	}
}
