package scan

// Limiter caps the number of entries admitted after filtering.
type Limiter struct {
	maximum   int
	admitted  int
	truncated bool
}

// NewLimiter returns a Limiter admitting at most maximum entries. A maximum of
// zero or less admits everything.
func NewLimiter(maximum int) *Limiter {
	return &Limiter{maximum: maximum}
}

// Admit records one more passing entry. It returns false, and marks the
// limiter truncated, once the cap has already been reached.
func (limiter *Limiter) Admit() bool {
	if limiter.maximum > 0 && limiter.admitted >= limiter.maximum {
		limiter.truncated = true
		return false
	}
	limiter.admitted++
	return true
}

// Admitted returns the number of entries admitted so far.
func (limiter *Limiter) Admitted() int {
	return limiter.admitted
}

// Maximum returns the configured cap.
func (limiter *Limiter) Maximum() int {
	return limiter.maximum
}

// Truncated reports whether an entry was refused because of the cap.
func (limiter *Limiter) Truncated() bool {
	return limiter.truncated
}
