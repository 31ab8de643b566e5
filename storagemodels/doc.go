/*
Package storagemodels defines the parameter and result types shared by the
polymorphic store implementations.

QueryParams mirrors a DynamoDB Query call; StreamResult and the StreamOption
functional options configure the channel-based streaming decode path.
*/
package storagemodels
