/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package polyregistry

import "sync"

// Registrar is implemented by anything that can install constructors into a
// Registry. Concrete types usually satisfy it through a Registration value.
type Registrar[B, A any] interface {
	RegisterInto(r *Registry[B, A]) error
}

// RegisterAll runs an explicit, auditable registration pass: every record
// is installed in order, stopping at the first failure. Call it once at
// process startup, before any Construct call is reachable, to avoid
// depending on package-initialization ordering across components.
func RegisterAll[B, A any](r *Registry[B, A], recs ...Registrar[B, A]) error {
	for _, rec := range recs {
		if err := rec.RegisterInto(r); err != nil {
			return err
		}
	}
	return nil
}

// Registration is the one-time registration record for a single concrete
// type. Ensure installs the constructor at most once no matter how many
// goroutines or code paths touch the type first, which makes it safe to
// call from every site that is about to construct by name.
type Registration[B, A any] struct {
	name string
	ctor Constructor[B, A]
	once sync.Once
	err  error
}

// NewRegistration creates a registration record binding name to ctor.
func NewRegistration[B, A any](name string, ctor Constructor[B, A]) *Registration[B, A] {
	return &Registration[B, A]{name: name, ctor: ctor}
}

// Name returns the name the record registers under.
func (g *Registration[B, A]) Name() string {
	return g.name
}

// Ensure registers the record's constructor into r exactly once. Later
// calls return the outcome of the first one; a record is bound to the first
// registry it is ensured against.
func (g *Registration[B, A]) Ensure(r *Registry[B, A]) error {
	g.once.Do(func() {
		g.err = r.Register(g.name, g.ctor)
	})
	return g.err
}

// RegisterInto makes Registration usable with RegisterAll.
func (g *Registration[B, A]) RegisterInto(r *Registry[B, A]) error {
	return g.Ensure(r)
}
