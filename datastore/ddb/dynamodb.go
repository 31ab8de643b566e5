/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/polyregistry"
	"github.com/suparena/polyregistry/datastore"
	"github.com/suparena/polyregistry/errors"
)

// Store implements datastore.PolymorphicStore using AWS DynamoDB as the
// underlying single-table store. Every item carries an EntityType attribute
// and reads are routed through the kind registry to rebuild the concrete
// dynamic type.
type Store struct {
	client    *sdk.Client
	tableName string
	kinds     *datastore.KindRegistry
}

// NewClient initializes a DynamoDB client using static AWS credentials.
func NewClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewStore constructs a Store over an existing client. The kind registry
// must hold a decoder for every kind the table contains before reads begin.
func NewStore(client *sdk.Client, tableName string, kinds *datastore.KindRegistry) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		kinds:     kinds,
	}
}

// NewStoreWithCredentials builds the client and the store in one call.
func NewStoreWithCredentials(awsAccessKey, awsSecretKey, awsRegion, tableName string, kinds *datastore.KindRegistry) (*Store, error) {
	client, err := NewClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewStore(client, tableName, kinds), nil
}

// Put stores the given entity under its (kind, key) composite key.
func (s *Store) Put(ctx context.Context, e datastore.Entity) error {
	item, err := datastore.MarshalEnvelope(e)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem error: %w", err)
	}
	return nil
}

// GetOne retrieves a single entity and reconstructs its concrete dynamic
// type through the kind registry. A missing item returns a NotFoundError;
// an item whose EntityType has no registered decoder surfaces the
// registry's UnknownNameError.
func (s *Store) GetOne(ctx context.Context, kind, key string) (*polyregistry.Handle[datastore.Entity], error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.tableName,
		Key:       primaryKey(kind, key),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(kind, key)
	}

	return s.decode(out.Item)
}

// Delete removes the entity stored under the (kind, key) composite key.
func (s *Store) Delete(ctx context.Context, kind, key string) error {
	_, err := s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &s.tableName,
		Key:       primaryKey(kind, key),
	})
	if err != nil {
		return fmt.Errorf("DeleteItem error: %w", err)
	}
	return nil
}

func (s *Store) decode(item datastore.Item) (*polyregistry.Handle[datastore.Entity], error) {
	kind, err := datastore.ItemKind(item)
	if err != nil {
		return nil, err
	}
	return s.kinds.Construct(kind, item)
}

func primaryKey(kind, key string) datastore.Item {
	composite := datastore.CompositeKey(kind, key)
	return datastore.Item{
		datastore.AttrPK: &types.AttributeValueMemberS{Value: composite},
		datastore.AttrSK: &types.AttributeValueMemberS{Value: composite},
	}
}
