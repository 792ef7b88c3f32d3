package response

const (
	defaultSampleRate = 1.0
	defaultFFTSize    = 1024
	defaultWarmup     = 256
	defaultTolerance  = 0.02
)

// Config defines measurement settings.
type Config struct {
	// SampleRate in Hz. The default of 1 reports frequencies in cycles/sample.
	SampleRate float64
	// FFTSize is the transform length and the number of impulse response
	// samples analyzed. Always a power of two.
	FFTSize int
	// Warmup is the number of zero samples fed before measuring.
	Warmup int
	// Tolerance is the relative settling band around the final value.
	Tolerance float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		SampleRate: defaultSampleRate,
		FFTSize:    defaultFFTSize,
		Warmup:     defaultWarmup,
		Tolerance:  defaultTolerance,
	}
}

// WithSampleRate sets the sample rate used to convert bins to Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFFTSize sets the FFT length. Values that are not a power of two >= 2
// are ignored.
func WithFFTSize(n int) Option {
	return func(cfg *Config) {
		if isPowerOfTwo(n) {
			cfg.FFTSize = n
		}
	}
}

// WithWarmup sets how many zero samples are fed before measuring.
func WithWarmup(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.Warmup = n
		}
	}
}

// WithTolerance sets the relative settling band. Must be in (0, 1).
func WithTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 && tol < 1 {
			cfg.Tolerance = tol
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func isPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}
