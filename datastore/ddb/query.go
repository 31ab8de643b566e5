/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/suparena/polyregistry"
	"github.com/suparena/polyregistry/datastore"
	"github.com/suparena/polyregistry/storagemodels"
)

// Query runs a single query page and decodes every returned item through
// the kind registry. Use params.ExclusiveStartKey to continue from a
// previous page, or Stream for full traversal.
func (s *Store) Query(ctx context.Context, params *storagemodels.QueryParams) ([]*polyregistry.Handle[datastore.Entity], error) {
	out, err := s.client.Query(ctx, s.queryInput(params))
	if err != nil {
		return nil, fmt.Errorf("Query error: %w", err)
	}

	handles := make([]*polyregistry.Handle[datastore.Entity], 0, len(out.Items))
	for _, item := range out.Items {
		h, err := s.decode(item)
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// Stream traverses all pages matching params and sends one StreamResult
// per item. The channel closes when traversal completes, the context is
// canceled, or an error handler stops the stream. Item-level decode
// failures are delivered in the result rather than aborting the stream.
func (s *Store) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[*polyregistry.Handle[datastore.Entity]] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ch := make(chan storagemodels.StreamResult[*polyregistry.Handle[datastore.Entity]], options.BufferSize)

	go func() {
		defer close(ch)

		progress := storagemodels.StreamProgress{StartTime: time.Now()}
		pageParams := *params
		if pageParams.Limit == nil {
			limit := options.PageSize
			pageParams.Limit = &limit
		}

		for {
			out, err := s.queryPage(ctx, &pageParams, options)
			if err != nil {
				select {
				case ch <- storagemodels.StreamResult[*polyregistry.Handle[datastore.Entity]]{Error: err}:
				case <-ctx.Done():
				}
				return
			}

			progress.PagesProcessed++
			for _, item := range out.Items {
				h, decodeErr := s.decode(item)
				result := storagemodels.StreamResult[*polyregistry.Handle[datastore.Entity]]{
					Item:  h,
					Raw:   item,
					Error: decodeErr,
					Meta: storagemodels.StreamMeta{
						Index:      progress.ItemsProcessed,
						PageNumber: progress.PagesProcessed,
						Timestamp:  time.Now(),
					},
				}
				select {
				case ch <- result:
					progress.ItemsProcessed++
				case <-ctx.Done():
					return
				}
				if decodeErr != nil && options.ErrorHandler != nil && !options.ErrorHandler(decodeErr) {
					return
				}
			}

			progress.LastKey = out.LastEvaluatedKey
			if options.ProgressHandler != nil {
				options.ProgressHandler(progress)
			}

			if out.LastEvaluatedKey == nil {
				return
			}
			pageParams.ExclusiveStartKey = out.LastEvaluatedKey
		}
	}()

	return ch
}

// queryPage runs one page with retry on transient errors.
func (s *Store) queryPage(ctx context.Context, params *storagemodels.QueryParams, options storagemodels.StreamOptions) (*sdk.QueryOutput, error) {
	var lastErr error
	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(options.RetryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		out, err := s.client.Query(ctx, s.queryInput(params))
		if err == nil {
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}
	return nil, fmt.Errorf("query failed after %d retries: %w", options.MaxRetries, lastErr)
}

func (s *Store) queryInput(params *storagemodels.QueryParams) *sdk.QueryInput {
	return &sdk.QueryInput{
		TableName:                 &s.tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		FilterExpression:          params.FilterExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ScanIndexForward:          params.ScanIndexForward,
	}
}
