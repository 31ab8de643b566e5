/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package polyregistry

import (
	"fmt"
	"io"

	"github.com/suparena/polyregistry/errors"
)

// Cloneable is the capability a concrete type implements to support
// polymorphic cloning. Clone must return a new, independently owned copy of
// the receiver's dynamic type upcast to the family B. Because each concrete
// type produces its own copy, a clone can never carry less state than the
// original.
type Cloneable[B any] interface {
	Clone(tok Token) (B, error)
}

// Handle is the sole owner of one constructed base-family instance. It
// records the registered name the instance was built under, so callers can
// report the dynamic type without reflection.
type Handle[B any] struct {
	value  B
	tok    Token
	closed bool
}

// Value returns the owned instance. The zero B is returned after Close.
func (h *Handle[B]) Value() B {
	return h.value
}

// Name returns the registered name the instance was constructed under.
func (h *Handle[B]) Name() string {
	return h.tok.name
}

// Clone duplicates the owned instance through its dynamic type and returns
// a new Handle owning the copy. The instance must implement Cloneable[B];
// otherwise a NotCloneableError is returned.
func (h *Handle[B]) Clone() (*Handle[B], error) {
	c, ok := any(h.value).(Cloneable[B])
	if !ok {
		return nil, errors.NewNotCloneableError(h.tok.name)
	}

	v, err := c.Clone(h.tok)
	if err != nil {
		return nil, fmt.Errorf("cloning %q: %w", h.tok.name, err)
	}
	return &Handle[B]{value: v, tok: h.tok}, nil
}

// Close releases the owned instance. If the instance implements io.Closer
// its Close method runs, so derived-type resources are released through the
// dynamic type. Close is idempotent.
func (h *Handle[B]) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true

	closer, ok := any(h.value).(io.Closer)

	var zero B
	h.value = zero

	if ok {
		return closer.Close()
	}
	return nil
}
