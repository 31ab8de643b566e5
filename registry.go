/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package polyregistry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/polyregistry/errors"
)

// Constructor builds one instance of the base family B from an argument
// value of type A. The Token is minted by the Registry for each call; a
// constructor that wants a hard guarantee it was reached through the
// registry checks tok.Valid().
type Constructor[B, A any] func(tok Token, args A) (B, error)

// Registry maps names to constructors for a single base family B with
// argument type A. One Registry exists per (B, A) pair; using a different
// argument type against the same family is a compile error, not a runtime
// one.
//
// Registration is expected to complete before concurrent use begins, but
// every operation is safe under concurrent access regardless.
type Registry[B, A any] struct {
	mu     sync.RWMutex
	family string
	ctors  map[string]Constructor[B, A]
}

// New creates an empty Registry for the (B, A) pair.
func New[B, A any]() *Registry[B, A] {
	return &Registry[B, A]{
		family: typeOf[B]().String(),
		ctors:  make(map[string]Constructor[B, A]),
	}
}

// Family returns the name of the base family this registry serves.
func (r *Registry[B, A]) Family() string {
	return r.family
}

// Register inserts a constructor under the given name. Registering a name
// twice returns a DuplicateNameError and leaves the first registration in
// place; two types claiming the same identity is a configuration error the
// caller should surface loudly.
func (r *Registry[B, A]) Register(name string, ctor Constructor[B, A]) error {
	if ctor == nil {
		return errors.ErrNilConstructor
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ctors[name]; exists {
		return errors.NewDuplicateNameError(r.family, name)
	}
	r.ctors[name] = ctor
	return nil
}

// MustRegister registers a constructor and panics on failure. Intended for
// startup paths where a duplicate name is unrecoverable.
func (r *Registry[B, A]) MustRegister(name string, ctor Constructor[B, A]) {
	if err := r.Register(name, ctor); err != nil {
		panic(fmt.Sprintf("polyregistry: %v", err))
	}
}

// Construct looks up the constructor registered under name, invokes it with
// args and returns a Handle owning the new instance. An unregistered name
// returns an UnknownNameError; this is a normal runtime condition (for
// example a name taken from user input) rather than a programming error.
func (r *Registry[B, A]) Construct(name string, args A) (*Handle[B], error) {
	r.mu.RLock()
	ctor, exists := r.ctors[name]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NewUnknownNameError(r.family, name)
	}

	tok := Token{name: name}
	v, err := ctor(tok, args)
	if err != nil {
		return nil, fmt.Errorf("constructing %q: %w", name, err)
	}
	return &Handle[B]{value: v, tok: tok}, nil
}

// Has reports whether a constructor is registered under name.
func (r *Registry[B, A]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.ctors[name]
	return exists
}

// Names returns all registered names.
func (r *Registry[B, A]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered names.
func (r *Registry[B, A]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ctors)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
