/*
Package manifest loads the YAML registration manifest and verifies a
registry against it.

A manifest lists, per family, every type name a process is expected to
register before constructing by name:

	families:
	  - name: entity
	    types:
	      - name: UserProfile
	        goType: testmodels.UserProfile
	      - name: AuditEvent
	        goType: testmodels.AuditEvent

Verification runs after the startup registration pass:

	fam, _ := m.Family("entity")
	if err := fam.Verify(kinds.Names()); err != nil {
	    log.Fatal(err)
	}

The same manifest drives the processor package, which generates the Go
registration source for each family.
*/
package manifest
