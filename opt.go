package toolschema

import (
	// Packages
	normalizer "github.com/mutablelogic/go-toolschema/pkg/normalizer"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a schema
type Opt func(*Opts) error

// set of options
type Opts struct {
	policy normalizer.Policy
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ApplyOpts returns a structure of options
func ApplyOpts(opts ...Opt) (*Opts, error) {
	o := new(Opts)
	o.policy = normalizer.DefaultPolicy()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Policy returns the normalization policy held by the options
func (o *Opts) Policy() normalizer.Policy {
	return o.policy
}

// WithDenied replaces the denied keyword set
func WithDenied(keywords ...string) Opt {
	return func(o *Opts) error {
		denied := make(map[string]bool, len(keywords))
		for _, keyword := range keywords {
			denied[keyword] = true
		}
		o.policy.Denied = denied
		return nil
	}
}

// WithDeny adds keywords to the denied set
func WithDeny(keywords ...string) Opt {
	return func(o *Opts) error {
		for _, keyword := range keywords {
			o.policy.Denied[keyword] = true
		}
		return nil
	}
}

// WithAllow removes keywords from the denied set
func WithAllow(keywords ...string) Opt {
	return func(o *Opts) error {
		for _, keyword := range keywords {
			delete(o.policy.Denied, keyword)
		}
		return nil
	}
}

// WithComposition sets the policy for oneOf/allOf collisions with an
// existing anyOf
func WithComposition(policy normalizer.CompositionPolicy) Opt {
	return func(o *Opts) error {
		switch policy {
		case normalizer.CompositionMerge, normalizer.CompositionLastWins, normalizer.CompositionReject:
			o.policy.Composition = policy
		default:
			return ErrBadParameter.Withf("invalid composition policy: %v", policy)
		}
		return nil
	}
}

// WithoutObjectForcing disables additionalProperties enforcement on
// object-typed nodes which declare no properties
func WithoutObjectForcing() Opt {
	return func(o *Opts) error {
		o.policy.ForceObjects = false
		return nil
	}
}
