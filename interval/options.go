// SPDX-License-Identifier: MIT

package interval

const panicQuantileNil = "interval: WithQuantile: nil quantile function"

// Option configures an Estimator.
type Option func(*Estimator)

// WithQuantile replaces the Student-t quantile. Panics on nil.
func WithQuantile(q QuantileFunc) Option {
	if q == nil {
		panic(panicQuantileNil)
	}

	return func(e *Estimator) { e.quantile = q }
}
