/*
Package ddb implements datastore.PolymorphicStore on AWS DynamoDB using a
single-table design.

Every entity is written under a composite primary key (KIND#KEY for both PK
and SK) together with an EntityType attribute carrying the registered kind
name. Reads look up the EntityType attribute and route the raw item through
the kind registry, so callers get back a handle owning the concrete dynamic
type without naming it:

	kinds := datastore.NewKindRegistry()
	datastore.RegisterKind[testmodels.UserProfile](kinds, "UserProfile")

	store, err := ddb.NewStoreWithCredentials(accessKey, secretKey, region, table, kinds)
	h, err := store.GetOne(ctx, "UserProfile", "u-123")

Stream traverses query pages in a goroutine and delivers decoded handles
over a channel, with retry, progress and error-handler hooks configured via
storagemodels.StreamOption values.
*/
package ddb
