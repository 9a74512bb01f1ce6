/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/wpstore/storagemodels"
)

// GSIConfig holds the configuration for GSI key mappings
type GSIConfig struct {
	// IndexName is the actual GSI name in DynamoDB (e.g., "GSI1")
	IndexName string
	// PartitionKeyName is the actual partition key attribute name in the GSI (e.g., "PK1")
	PartitionKeyName string
	// SortKeyName is the actual sort key attribute name in the GSI (e.g., "SK1")
	SortKeyName string
}

// DefaultGSIConfig matches the PK1 and SK1 entries of SnapshotIndexMap.
var DefaultGSIConfig = GSIConfig{
	IndexName:        "GSI1",
	PartitionKeyName: "PK1",
	SortKeyName:      "SK1",
}

// List queries the snapshot partition of the GSI page by page. Only the
// listing attributes are projected, so bodies are never read.
func (s *Store) List(ctx context.Context, opts ...storagemodels.ListOption) ([]storagemodels.SnapshotInfo, error) {
	o := storagemodels.ApplyListOptions(opts...)

	keyCond := "#pk = :pk"
	names := map[string]string{
		"#pk": s.gsi.PartitionKeyName,
		"#k":  "Key",
		"#et": "EntityType",
		"#sa": "SavedAt",
	}
	values := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: SnapshotIndexMap["PK1"]},
	}
	if o.Prefix != "" {
		keyCond += " AND begins_with(#sk, :prefix)"
		names["#sk"] = s.gsi.SortKeyName
		values[":prefix"] = &types.AttributeValueMemberS{Value: o.Prefix}
	}

	input := &sdk.QueryInput{
		TableName:                 &s.tableName,
		IndexName:                 aws.String(s.gsi.IndexName),
		KeyConditionExpression:    &keyCond,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ProjectionExpression:      aws.String("#k, #et, #sa"),
		ScanIndexForward:          aws.Bool(true),
	}
	if o.PageSize > 0 {
		input.Limit = aws.Int32(o.PageSize)
	}

	var results []storagemodels.SnapshotInfo
	for page := 1; ; page++ {
		out, err := s.queryWithRetry(ctx, input, o)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		var infos []storagemodels.SnapshotInfo
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &infos); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot listing: %w", err)
		}
		results = append(results, infos...)

		if len(out.LastEvaluatedKey) == 0 {
			return results, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// queryWithRetry executes a query, retrying throttled and server errors with
// linear backoff.
func (s *Store) queryWithRetry(
	ctx context.Context,
	input *sdk.QueryInput,
	options storagemodels.ListOptions,
) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := s.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		// Don't sleep after last attempt
		if attempt < options.MaxRetries {
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", options.MaxRetries, lastErr)
}

func isRetryableError(err error) bool {
	var throughput *types.ProvisionedThroughputExceededException
	var limit *types.RequestLimitExceeded
	var internal *types.InternalServerError
	if stderrors.As(err, &throughput) || stderrors.As(err, &limit) || stderrors.As(err, &internal) {
		return true
	}

	// Check for AWS SDK retryable errors
	var retryable interface{ IsRetryable() bool }
	if stderrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}
