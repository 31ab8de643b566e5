/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrDuplicateName is returned when a name is registered twice in one family
	ErrDuplicateName = errors.New("name already registered")

	// ErrUnknownName is returned when constructing a name with no registration
	ErrUnknownName = errors.New("no constructor registered for name")

	// ErrNotCloneable is returned when an instance does not support cloning
	ErrNotCloneable = errors.New("instance does not support cloning")

	// ErrNilConstructor is returned when registering a nil constructor
	ErrNilConstructor = errors.New("nil constructor")

	// ErrNotFound is returned when a stored entity is not found
	ErrNotFound = errors.New("entity not found")
)

// DuplicateNameError reports two types claiming the same name within one
// family registry. This is a configuration-level error: the first
// registration stays in effect and the collision should surface at startup.
type DuplicateNameError struct {
	Family string
	Name   string
}

func (e *DuplicateNameError) Error() string {
	if e.Family != "" {
		return fmt.Sprintf("type %q already registered in family %s", e.Name, e.Family)
	}
	return fmt.Sprintf("type %q already registered", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// UnknownNameError reports a construction request for a name with no
// registered constructor. Callers decide how to handle it; a bad name is
// ordinary runtime input, not a crash.
type UnknownNameError struct {
	Family string
	Name   string
}

func (e *UnknownNameError) Error() string {
	if e.Family != "" {
		return fmt.Sprintf("no type registered under %q in family %s", e.Name, e.Family)
	}
	return fmt.Sprintf("no type registered under %q", e.Name)
}

func (e *UnknownNameError) Is(target error) bool {
	return target == ErrUnknownName
}

// NotCloneableError reports a clone request against an instance whose
// dynamic type does not implement the clone capability.
type NotCloneableError struct {
	Name string
}

func (e *NotCloneableError) Error() string {
	return fmt.Sprintf("instance constructed as %q does not support cloning", e.Name)
}

func (e *NotCloneableError) Is(target error) bool {
	return target == ErrNotCloneable
}

// NotFoundError reports a missing stored entity.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Helper functions for creating errors

// NewDuplicateNameError creates a new DuplicateNameError
func NewDuplicateNameError(family, name string) error {
	return &DuplicateNameError{Family: family, Name: name}
}

// NewUnknownNameError creates a new UnknownNameError
func NewUnknownNameError(family, name string) error {
	return &UnknownNameError{Family: family, Name: name}
}

// NewNotCloneableError creates a new NotCloneableError
func NewNotCloneableError(name string) error {
	return &NotCloneableError{Name: name}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}

// IsDuplicateName checks if an error is a duplicate name error
func IsDuplicateName(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}

// IsUnknownName checks if an error is an unknown name error
func IsUnknownName(err error) bool {
	return errors.Is(err, ErrUnknownName)
}

// IsNotCloneable checks if an error is a not cloneable error
func IsNotCloneable(err error) bool {
	return errors.Is(err, ErrNotCloneable)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
