/*
Package processor provides code generation for registration manifests.

The processor reads a YAML manifest declaring the type names each family
must register and generates Go code performing the explicit startup
registration pass.

Manifest:

	families:
	  - name: entity
	    types:
	      - name: UserProfile
	        goType: testmodels.UserProfile

Generated Code:

	func RegisterEntity(kinds *datastore.KindRegistry) error {
	    if err := datastore.RegisterKind[testmodels.UserProfile](kinds, "UserProfile"); err != nil {
	        return err
	    }
	    return nil
	}

Generating the pass keeps registration auditable and deterministic: the set
of registered names lives in one reviewed file instead of being scattered
across package init ordering.
*/
package processor
