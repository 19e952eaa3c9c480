package dedupe

// Default sizing constants.
const (
	defaultCapacityHint = 256
)

type settings struct {
	capacityHint int
}

// Option applies a configuration option to the deduper.
type Option func(*settings)

// WithCapacityHint pre-sizes the seen map for an expected batch size.
func WithCapacityHint(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.capacityHint = n
		}
	}
}
