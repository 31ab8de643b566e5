/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package polyregistry

// Token proves that a construction request was routed through a Registry.
// Only the registry machinery can mint a valid Token; the zero Token is
// inert and rejected by constructors that call Valid. Concrete types that
// take a Token in their constructor cannot be built by code that bypassed
// registration.
type Token struct {
	name string
}

// Name returns the registered name the token was minted for.
func (t Token) Name() string {
	return t.name
}

// Valid reports whether the token was minted by a Registry.
func (t Token) Valid() bool {
	return t.name != ""
}
