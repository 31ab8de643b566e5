/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package polyregistry

import (
	"reflect"
	"sync"
)

type familyKey struct {
	base reflect.Type
	args reflect.Type
}

// FamilySet manages Registry instances for different base families. Each
// (base type, argument type) pair gets its own Registry, created lazily on
// first use and kept for the life of the set. The same concrete type may
// register in several families, or under several aliases in one family.
type FamilySet struct {
	mu       sync.Mutex
	families map[familyKey]any
}

// NewFamilySet creates an empty FamilySet.
func NewFamilySet() *FamilySet {
	return &FamilySet{
		families: make(map[familyKey]any),
	}
}

// ForFamily returns the Registry for the (B, A) pair, creating it if
// necessary. Repeated calls with the same type arguments return the same
// Registry.
func ForFamily[B, A any](fs *FamilySet) *Registry[B, A] {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	key := familyKey{base: typeOf[B](), args: typeOf[A]()}

	if reg, exists := fs.families[key]; exists {
		return reg.(*Registry[B, A])
	}

	reg := New[B, A]()
	fs.families[key] = reg
	return reg
}

// Register is a convenience function to register a constructor in the
// family registry for (B, A).
func Register[B, A any](fs *FamilySet, name string, ctor Constructor[B, A]) error {
	return ForFamily[B, A](fs).Register(name, ctor)
}

// Construct is a convenience function to construct by name from the family
// registry for (B, A).
func Construct[B, A any](fs *FamilySet, name string, args A) (*Handle[B], error) {
	return ForFamily[B, A](fs).Construct(name, args)
}

// Names is a convenience function to list registered names for (B, A).
func Names[B, A any](fs *FamilySet) []string {
	return ForFamily[B, A](fs).Names()
}
