/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/polyregistry"
	"github.com/suparena/polyregistry/storagemodels"
)

// Item is a raw DynamoDB attribute map.
type Item = map[string]types.AttributeValue

// Envelope attribute names for single-table polymorphic storage.
const (
	AttrPK         = "PK"
	AttrSK         = "SK"
	AttrEntityType = "EntityType"
)

// Entity is the base family stored polymorphically. Each concrete type
// reports the kind name it registers under and a key unique within that
// kind.
type Entity interface {
	EntityKind() string
	EntityKey() string
}

// KindRegistry maps kind names to item decoders for the Entity family. A
// store consults it to reconstruct the concrete dynamic type behind every
// item it reads.
type KindRegistry = polyregistry.Registry[Entity, Item]

// NewKindRegistry creates an empty KindRegistry.
func NewKindRegistry() *KindRegistry {
	return polyregistry.New[Entity, Item]()
}

// Decoder returns a constructor that unmarshals a raw item into a new *T.
func Decoder[T any]() polyregistry.Constructor[Entity, Item] {
	return func(_ polyregistry.Token, item Item) (Entity, error) {
		v := new(T)
		if err := attributevalue.UnmarshalMap(item, v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		e, ok := any(v).(Entity)
		if !ok {
			return nil, fmt.Errorf("type %T does not implement datastore.Entity", v)
		}
		return e, nil
	}
}

// RegisterKind registers the decoder for *T under the given kind name.
func RegisterKind[T any](r *KindRegistry, kind string) error {
	return r.Register(kind, Decoder[T]())
}

// CompositeKey builds the single-table primary key for a (kind, key) pair.
func CompositeKey(kind, key string) string {
	return kind + "#" + key
}

// MarshalEnvelope marshals an entity and stamps the envelope attributes
// (PK, SK, EntityType) used to route the item back through a KindRegistry.
func MarshalEnvelope(e Entity) (Item, error) {
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	kind := e.EntityKind()
	key := e.EntityKey()
	if kind == "" || key == "" {
		return nil, fmt.Errorf("entity %T has empty kind or key", e)
	}

	composite := CompositeKey(kind, key)
	item[AttrPK] = &types.AttributeValueMemberS{Value: composite}
	item[AttrSK] = &types.AttributeValueMemberS{Value: composite}
	item[AttrEntityType] = &types.AttributeValueMemberS{Value: kind}
	return item, nil
}

// ItemKind extracts the registered kind name from a stored item.
func ItemKind(item Item) (string, error) {
	av, ok := item[AttrEntityType]
	if !ok {
		return "", fmt.Errorf("item has no %s attribute", AttrEntityType)
	}
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok || s.Value == "" {
		return "", fmt.Errorf("item %s attribute is not a string", AttrEntityType)
	}
	return s.Value, nil
}

// PolymorphicStore stores base-family entities and reconstructs their
// concrete dynamic types on the way out.
type PolymorphicStore interface {
	Put(ctx context.Context, e Entity) error

	GetOne(ctx context.Context, kind, key string) (*polyregistry.Handle[Entity], error)

	Query(ctx context.Context, params *storagemodels.QueryParams) ([]*polyregistry.Handle[Entity], error)

	Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[*polyregistry.Handle[Entity]]

	Delete(ctx context.Context, kind, key string) error
}
