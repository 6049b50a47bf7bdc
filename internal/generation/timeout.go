package generation

import "time"

// Default timeout policy values. Timeouts grow stepwise with input size
// rather than linearly per character: long documents get room to finish
// without pathological inputs earning unbounded waits.
const (
	DefaultTimeoutBase     = 30 * time.Second
	DefaultTimeoutPerBlock = 10 * time.Second
	DefaultTimeoutMax      = 90 * time.Second
	DefaultTimeoutBlock    = 5000 // characters per increment block
)

// TimeoutPolicy computes a per-request timeout proportional to input size,
// bounded by a floor (Base) and a ceiling (Max).
type TimeoutPolicy struct {
	Base       time.Duration
	PerBlock   time.Duration
	Max        time.Duration
	BlockChars int
}

// DefaultTimeoutPolicy returns the policy used when configuration supplies
// no overrides.
func DefaultTimeoutPolicy() TimeoutPolicy {
	return TimeoutPolicy{
		Base:       DefaultTimeoutBase,
		PerBlock:   DefaultTimeoutPerBlock,
		Max:        DefaultTimeoutMax,
		BlockChars: DefaultTimeoutBlock,
	}
}

// Compute returns the timeout for a prompt of promptLen characters. A
// positive override is used verbatim, bypassing the policy. Otherwise the
// timeout is Base plus PerBlock for every started block of BlockChars
// characters, clamped to Max.
func (p TimeoutPolicy) Compute(promptLen int, override time.Duration) time.Duration {
	if override > 0 {
		return override
	}

	blocks := (promptLen + p.BlockChars - 1) / p.BlockChars
	timeout := p.Base + time.Duration(blocks)*p.PerBlock
	if timeout > p.Max {
		return p.Max
	}
	return timeout
}
