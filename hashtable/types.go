package hashtable

// defaultBuckets is the bucket count used when WithBuckets is absent.
const defaultBuckets = 10

// config carries construction-time knobs for a Table.
type config struct {
	buckets     int
	maxLoad     float64
	growEnabled bool
}

// Option adjusts table construction.
type Option func(*config)

// WithBuckets sets the initial bucket count. Values below 1 are ignored
// and the default of 10 applies.
func WithBuckets(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.buckets = n
		}
	}
}

// WithMaxLoadFactor enables automatic growth: whenever an insert would
// push len/buckets beyond f, the table doubles its bucket count and
// rehashes. Values at or below 0 are ignored and the table keeps its
// fixed bucket count.
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) {
		if f > 0 {
			c.maxLoad = f
			c.growEnabled = true
		}
	}
}

func defaultConfig() config {
	return config{buckets: defaultBuckets}
}
