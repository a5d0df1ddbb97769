// Package traverse provides the Order enumeration, Walk options and error
// definitions.
package traverse

import (
	"errors"
	"fmt"
)

// Sentinel errors for Walk.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrUnknownOrder is returned when Walk receives an unsupported Order.
	ErrUnknownOrder = errors.New("traverse: unknown order")
)

// Order selects the visiting discipline of Walk.
type Order int

const (
	Pre   Order = iota // node, left, right
	In                 // left, node, right
	Post               // left, right, node
	Level              // breadth-first, left to right
)

// String returns the conventional name of the order.
func (o Order) String() string {
	switch o {
	case Pre:
		return "pre-order"
	case In:
		return "in-order"
	case Post:
		return "post-order"
	case Level:
		return "level-order"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Option configures Walk via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*WalkOptions)

// WalkOptions holds the layer band applied by Walk.
type WalkOptions struct {
	// MinLayer, if > 0, suppresses nodes on layers above it (closer to the
	// root). They are still traversed to reach deeper nodes.
	MinLayer int

	// MaxLayer, if > 0, stops descending past this layer.
	MaxLayer int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns WalkOptions with no layer bounds.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		MinLayer: 0,
		MaxLayer: 0,
		err:      nil,
	}
}

// WithMinLayer yields only nodes on layer k or deeper.
//
//	k > 0: lower bound k
//	k == 0: explicit no lower bound
//	k < 0: invalid option → ErrOptionViolation
func WithMinLayer(k int) Option {
	return func(o *WalkOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MinLayer cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MinLayer = k
	}
}

// WithMaxLayer limits the walk to layers 1..k.
//
//	k > 0: upper bound k
//	k == 0: explicit no upper bound
//	k < 0: invalid option → ErrOptionViolation
func WithMaxLayer(k int) Option {
	return func(o *WalkOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxLayer cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxLayer = k
	}
}

// validate checks cross-option constraints.
func (o WalkOptions) validate() error {
	if o.err != nil {
		return o.err
	}
	if o.MaxLayer > 0 && o.MinLayer > o.MaxLayer {
		return fmt.Errorf("%w: MinLayer %d exceeds MaxLayer %d", ErrOptionViolation, o.MinLayer, o.MaxLayer)
	}

	return nil
}
