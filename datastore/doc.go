/*
Package datastore defines the polymorphic persistence layer built on top of
the registry core.

The main interface is PolymorphicStore, which persists any member of the
Entity family and reconstructs the concrete dynamic type when reading:

	type PolymorphicStore interface {
	    Put(ctx context.Context, e Entity) error
	    GetOne(ctx context.Context, kind, key string) (*polyregistry.Handle[Entity], error)
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]*polyregistry.Handle[Entity], error)
	    Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[*polyregistry.Handle[Entity]]
	    Delete(ctx context.Context, kind, key string) error
	}

Every stored item carries an EntityType attribute naming the kind it was
written as. Reads route the raw item through a KindRegistry, so the caller
gets back a handle owning the original concrete type without naming it:

	kinds := datastore.NewKindRegistry()
	datastore.RegisterKind[testmodels.UserProfile](kinds, "UserProfile")

	h, err := store.GetOne(ctx, "UserProfile", "u-123")
	profile := h.Value().(*testmodels.UserProfile)

Implementations:
  - ddb: DynamoDB implementation using single-table design
  - mock: In-memory implementation for testing, sharing the same envelope
*/
package datastore
