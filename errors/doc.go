/*
Package errors provides semantic error types for the polyregistry module.

The package follows the sentinel + typed error pattern: each condition has
a sentinel for errors.Is checks and a typed error carrying context:

	h, err := reg.Construct(name, args)
	if errors.IsUnknownName(err) {
	    // bad user input, report and continue
	}

Registration-time collisions are configuration errors:

	if err := reg.Register("User", ctor); errors.IsDuplicateName(err) {
	    log.Fatalf("two types claim the name User: %v", err)
	}

All typed errors implement Is, so the standard library errors.Is works
against the sentinels as well.
*/
package errors
