/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package polyregistry

import (
	"fmt"
	"testing"

	"github.com/suparena/polyregistry/errors"
)

// Test family: animals constructed from a single int argument.
type animal interface {
	Kind() string
	Sound() string
}

type dog struct {
	volume int
}

func newDog(tok Token, volume int) (animal, error) {
	if !tok.Valid() {
		return nil, fmt.Errorf("dog construction bypassed the registry")
	}
	return &dog{volume: volume}, nil
}

func (d *dog) Kind() string  { return "Dog" }
func (d *dog) Sound() string { return fmt.Sprintf("woof(%d)", d.volume) }

func (d *dog) Clone(_ Token) (animal, error) {
	cp := *d
	return &cp, nil
}

type cat struct {
	lives int
	toys  []string
}

func newCat(tok Token, lives int) (animal, error) {
	if !tok.Valid() {
		return nil, fmt.Errorf("cat construction bypassed the registry")
	}
	return &cat{lives: lives}, nil
}

func (c *cat) Kind() string  { return "Cat" }
func (c *cat) Sound() string { return fmt.Sprintf("meow(%d)", c.lives) }

func (c *cat) Clone(_ Token) (animal, error) {
	cp := *c
	cp.toys = append([]string(nil), c.toys...)
	return &cp, nil
}

func newAnimalRegistry(t *testing.T) *Registry[animal, int] {
	t.Helper()

	reg := New[animal, int]()
	if err := reg.Register("Dog", newDog); err != nil {
		t.Fatalf("Failed to register Dog: %v", err)
	}
	if err := reg.Register("Cat", newCat); err != nil {
		t.Fatalf("Failed to register Cat: %v", err)
	}
	return reg
}

func TestRegistryConstruct(t *testing.T) {
	reg := newAnimalRegistry(t)

	t.Run("DynamicType", func(t *testing.T) {
		h, err := reg.Construct("Dog", 3)
		if err != nil {
			t.Fatalf("Failed to construct Dog: %v", err)
		}
		if _, ok := h.Value().(*dog); !ok {
			t.Fatalf("Expected dynamic type *dog, got %T", h.Value())
		}
		if h.Name() != "Dog" {
			t.Errorf("Expected handle name Dog, got %q", h.Name())
		}

		// Same observable behavior as building the type directly.
		direct := &dog{volume: 3}
		if h.Value().Sound() != direct.Sound() {
			t.Errorf("Expected sound %q, got %q", direct.Sound(), h.Value().Sound())
		}
	})

	t.Run("UnknownName", func(t *testing.T) {
		h, err := reg.Construct("Fish", 1)
		if err == nil {
			t.Fatal("Expected error for unregistered name")
		}
		if !errors.IsUnknownName(err) {
			t.Errorf("Expected unknown name error, got %v", err)
		}
		if h != nil {
			t.Error("No handle should be returned for an unknown name")
		}
	})

	t.Run("ConstructorError", func(t *testing.T) {
		reg := New[animal, int]()
		reg.MustRegister("Sick", func(tok Token, n int) (animal, error) {
			return nil, fmt.Errorf("no animals available")
		})

		if _, err := reg.Construct("Sick", 1); err == nil {
			t.Fatal("Expected constructor error to propagate")
		}
	})
}

func TestDuplicateRegistration(t *testing.T) {
	reg := newAnimalRegistry(t)

	err := reg.Register("Dog", newCat)
	if err == nil {
		t.Fatal("Expected duplicate registration error")
	}
	if !errors.IsDuplicateName(err) {
		t.Errorf("Expected duplicate name error, got %v", err)
	}

	// The first registration must still be served unchanged.
	h, err := reg.Construct("Dog", 1)
	if err != nil {
		t.Fatalf("Failed to construct after duplicate attempt: %v", err)
	}
	if _, ok := h.Value().(*dog); !ok {
		t.Fatalf("Expected original *dog registration, got %T", h.Value())
	}
}

func TestMustRegisterPanics(t *testing.T) {
	reg := newAnimalRegistry(t)

	defer func() {
		if recover() == nil {
			t.Fatal("Expected MustRegister to panic on duplicate name")
		}
	}()
	reg.MustRegister("Dog", newDog)
}

func TestNilConstructor(t *testing.T) {
	reg := New[animal, int]()

	err := reg.Register("Dog", nil)
	if err != errors.ErrNilConstructor {
		t.Fatalf("Expected ErrNilConstructor, got %v", err)
	}
}

func TestTokenGate(t *testing.T) {
	// A zero token is inert; constructors that check Valid reject it.
	if _, err := newDog(Token{}, 3); err == nil {
		t.Fatal("Expected direct construction with a zero token to fail")
	}

	reg := newAnimalRegistry(t)
	h, err := reg.Construct("Dog", 3)
	if err != nil {
		t.Fatalf("Registry construction should mint a valid token: %v", err)
	}
	if h.Name() != "Dog" {
		t.Errorf("Expected token name Dog, got %q", h.Name())
	}
}

func TestRegistryIntrospection(t *testing.T) {
	reg := newAnimalRegistry(t)

	if !reg.Has("Dog") || !reg.Has("Cat") {
		t.Error("Expected Dog and Cat to be registered")
	}
	if reg.Has("Fish") {
		t.Error("Fish should not be registered")
	}
	if reg.Len() != 2 {
		t.Errorf("Expected 2 registrations, got %d", reg.Len())
	}

	names := reg.Names()
	if len(names) != 2 {
		t.Errorf("Expected 2 names, got %v", names)
	}
}

func TestConcurrentConstruct(t *testing.T) {
	reg := newAnimalRegistry(t)
	done := make(chan error)

	for i := 0; i < 32; i++ {
		go func(volume int) {
			h, err := reg.Construct("Dog", volume)
			if err != nil {
				done <- err
				return
			}
			want := fmt.Sprintf("woof(%d)", volume)
			if h.Value().Sound() != want {
				done <- fmt.Errorf("expected %q, got %q", want, h.Value().Sound())
				return
			}
			done <- nil
		}(i)
	}

	for i := 0; i < 32; i++ {
		if err := <-done; err != nil {
			t.Errorf("Concurrent construct failed: %v", err)
		}
	}
}
