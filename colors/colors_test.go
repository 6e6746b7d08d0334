package colors

import "testing"

func TestClassify_CanonicalThresholds(t *testing.T) {
	tests := []struct {
		name string
		rgb  []float64
		want Name
	}{
		{"yellow raw", []float64{255, 255, 0}, Yellow},
		{"yellow boundary", []float64{221, 221, 119}, Yellow},
		{"green raw", []float64{50, 200, 50}, Green},
		{"blue raw", []float64{50, 100, 220}, Blue},
		{"pink raw", []float64{230, 100, 230}, Pink},
	}

	for _, tt := range tests {
		if got := Classify(tt.rgb); got != tt.want {
			t.Errorf("%s: Classify(%v) = %s, want %s", tt.name, tt.rgb, got, tt.want)
		}
	}
}

func TestClassify_NormalizedScaleDetection(t *testing.T) {
	tests := []struct {
		name string
		rgb  []float64
		want Name
	}{
		{"yellow normalized", []float64{1.0, 1.0, 0.3}, Yellow},
		{"green normalized", []float64{0.2, 0.8, 0.2}, Green},
		{"blue normalized", []float64{0.2, 0.5, 0.9}, Blue},
		{"pink normalized", []float64{0.95, 0.5, 0.95}, Pink},
	}

	for _, tt := range tests {
		if got := Classify(tt.rgb); got != tt.want {
			t.Errorf("%s: Classify(%v) = %s, want %s", tt.name, tt.rgb, got, tt.want)
		}
	}
}

func TestClassify_DominantChannelFallback(t *testing.T) {
	// None of these pass the primary thresholds; the dominant channel decides.
	tests := []struct {
		name string
		rgb  []float64
		want Name
	}{
		{"reddish", []float64{200, 190, 60}, Pink},
		{"greenish", []float64{100, 160, 100}, Green},
		{"bluish", []float64{130, 140, 200}, Blue},
		{"dim everything", []float64{100, 100, 100}, Unknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.rgb); got != tt.want {
			t.Errorf("%s: Classify(%v) = %s, want %s", tt.name, tt.rgb, got, tt.want)
		}
	}
}

func TestClassify_MalformedInput(t *testing.T) {
	inputs := [][]float64{nil, {}, {0.5}, {0.5, 0.5}}

	for _, rgb := range inputs {
		if got := Classify(rgb); got != Unknown {
			t.Errorf("Classify(%v) = %s, want unknown", rgb, got)
		}
	}
}

func TestClassify_OutOfRangeNeverPanics(t *testing.T) {
	inputs := [][]float64{
		{-10, -10, -10},
		{1000, 1000, 1000},
		{255, -5, 300, 42},
	}

	for _, rgb := range inputs {
		got := Classify(rgb)
		if !got.Known() && got != Unknown {
			t.Errorf("Classify(%v) = %q, outside the closed value set", rgb, got)
		}
	}
}

func TestClassifySample_PrefersFill(t *testing.T) {
	fill := []float64{1.0, 1.0, 0.3}
	stroke := []float64{0.2, 0.8, 0.2}

	if got := ClassifySample(fill, stroke); got != Yellow {
		t.Errorf("Expected fill to win, got %s", got)
	}
	if got := ClassifySample(nil, stroke); got != Green {
		t.Errorf("Expected stroke fallback, got %s", got)
	}
	if got := ClassifySample(nil, nil); got != Unknown {
		t.Errorf("Expected unknown for missing samples, got %s", got)
	}
}

func TestName_Known(t *testing.T) {
	for _, n := range Canonical() {
		if !n.Known() {
			t.Errorf("Canonical color %s should be known", n)
		}
	}
	if Unknown.Known() {
		t.Error("Unknown should not report as known")
	}
	if Name("mauve").Known() {
		t.Error("Arbitrary names should not report as known")
	}
}

func TestName_Prototype(t *testing.T) {
	// Every prototype should classify back to its own name.
	for _, n := range Canonical() {
		c := n.Prototype()
		got := Classify([]float64{c.R, c.G, c.B})
		if got != n {
			t.Errorf("Prototype of %s classifies as %s", n, got)
		}
	}
}
