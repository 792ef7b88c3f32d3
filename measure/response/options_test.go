package response

import "testing"

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(WithSampleRate(100), WithFFTSize(256), WithWarmup(0), WithTolerance(0.05))
	want := Config{SampleRate: 100, FFTSize: 256, Warmup: 0, Tolerance: 0.05}
	if cfg != want {
		t.Fatalf("cfg = %#v, want %#v", cfg, want)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(
		WithSampleRate(0),
		WithFFTSize(1000),
		WithWarmup(-1),
		WithTolerance(1),
		nil,
	)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestDefaultConfig(t *testing.T) {
	want := Config{SampleRate: 1, FFTSize: 1024, Warmup: 256, Tolerance: 0.02}
	if cfg := DefaultConfig(); cfg != want {
		t.Fatalf("DefaultConfig() = %#v, want %#v", cfg, want)
	}
}
