// SPDX-License-Identifier: MIT
package hull

// Option configures ConvexHull, mirroring the functional-options pattern
// lvlath uses for core.GraphOption. The zero value of options is the
// default (unbounded facet budget).
type Option func(*options)

type options struct {
	maxFacets int
}

// WithMaxFacets caps the number of facets Extend will accumulate before
// giving up with ErrInternal, guarding against a malformed input union
// whose facet count would otherwise grow without bound. n<=0 means no
// cap (the default).
func WithMaxFacets(n int) Option {
	return func(o *options) { o.maxFacets = n }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
