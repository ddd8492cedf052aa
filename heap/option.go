package heap

type config struct {
	capacity int
}

type Option = func(c *config)

// WithCapacity preallocates storage for n entries.
// Negative n is treated as 0.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.capacity = n
	}
}

func applyOptions(options []Option) config {
	var c config
	for _, opt := range options {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
