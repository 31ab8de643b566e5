/*
Package polyregistry provides a self-registering polymorphic object
registry: independently written concrete types register a constructor under
a name, and callers construct instances of types unknown at compile time
purely from a runtime string. No central switch statement needs editing
when a new type is added.

Key Features:
  - One Registry per (base family, argument type) pair, enforced by generics
  - Construction tokens that gate base-family constructors behind registration
  - Owning handles with polymorphic cloning and release
  - Explicit eager registration passes or once-guarded lazy registration
  - Thread-safe registration and read-mostly concurrent construction
  - Semantic error types for duplicate and unknown names

Basic Usage:

	// One registry for the Animal family, constructed from an int.
	reg := polyregistry.New[Animal, int]()

	// Each concrete type contributes one registration record.
	reg.MustRegister("Dog", func(tok polyregistry.Token, size int) (Animal, error) {
	    return NewDog(tok, size), nil
	})

	// Construct by a name obtained at runtime.
	h, err := reg.Construct("Dog", 3)
	if err != nil { ... }
	defer h.Close()
	h.Value().Speak()

	// Duplicate the concrete dynamic type without naming it.
	copy, err := h.Clone()

Multiple families live side by side in a FamilySet, keyed by their type
parameters:

	fs := polyregistry.NewFamilySet()
	polyregistry.Register[Animal, int](fs, "Cat", newCat)
	h, err := polyregistry.Construct[Animal, int](fs, "Cat", 2)

For more information, see the documentation at https://github.com/suparena/polyregistry
*/
package polyregistry
