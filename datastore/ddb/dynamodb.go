/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/wpstore/codec"
	"github.com/suparena/wpstore/datastore"
	"github.com/suparena/wpstore/errors"
	"github.com/suparena/wpstore/storagemodels"
)

// API is the subset of the DynamoDB client the store calls. *dynamodb.Client
// satisfies it.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// SnapshotIndexMap lays snapshots out in a single table. The primary key
// addresses one snapshot; GSI1 groups all snapshots under one partition
// sorted by key.
var SnapshotIndexMap = map[string]string{
	"PK":  "SNAPSHOT#{Key}",
	"SK":  "SNAPSHOT#{Key}",
	"PK1": "SNAPSHOT",
	"SK1": "{Key}",
}

// Store implements datastore.DataStore on top of a DynamoDB table.
type Store struct {
	client    API
	tableName string
	codec     *codec.Codec
	gsi       GSIConfig
}

// Option configures a Store.
type Option func(*Store)

// WithCodec replaces codec.Default.
func WithCodec(c *codec.Codec) Option {
	return func(s *Store) {
		s.codec = c
	}
}

// WithGSI overrides the index used by List.
func WithGSI(gsi GSIConfig) Option {
	return func(s *Store) {
		s.gsi = gsi
	}
}

var _ datastore.DataStore = (*Store)(nil)

// New wraps a client. The table must have string keys PK and SK and a GSI
// matching DefaultGSIConfig.
func New(client API, tableName string, opts ...Option) *Store {
	s := &Store{
		client:    client,
		tableName: tableName,
		codec:     codec.Default,
		gsi:       DefaultGSIConfig,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are used
// when both keys are set; otherwise the default AWS credential chain applies.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(awsRegion)}
	if awsAccessKey != "" && awsSecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// Save puts the snapshot item. With WithCreateOnly the put is conditional on
// the key being unused.
func (s *Store) Save(ctx context.Context, key string, v any, opts ...storagemodels.SaveOption) error {
	o := storagemodels.ApplySaveOptions(opts...)
	snap, err := datastore.Encode(s.codec, key, v)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	expanded, err := expandMacros(SnapshotIndexMap, snap)
	if err != nil {
		return err
	}
	for k, val := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: val}
	}

	input := &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	}
	if o.CreateOnly {
		input.ConditionExpression = aws.String("attribute_not_exists(PK)")
	}
	_, err = s.client.PutItem(ctx, input)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return errors.NewConditionFailedError("save", "snapshot does not exist")
		}
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Load gets the snapshot item and decodes its body.
func (s *Store) Load(ctx context.Context, key string) (any, error) {
	keyMap, err := s.key(key)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      &s.tableName,
		Key:            keyMap,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError("snapshot", key)
	}

	var snap storagemodels.SnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return datastore.Decode(s.codec, snap)
}

// Delete removes a snapshot. Deleting a missing key is a NotFoundError.
func (s *Store) Delete(ctx context.Context, key string) error {
	keyMap, err := s.key(key)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:           &s.tableName,
		Key:                 keyMap,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return errors.NewNotFoundError("snapshot", key)
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

func (s *Store) key(key string) (map[string]types.AttributeValue, error) {
	if err := datastore.ValidateKey(key); err != nil {
		return nil, err
	}
	expanded := expandStringKey(SnapshotIndexMap, key)
	return buildKeyFromExpanded(expanded)
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills each template in indexMap with the attributes of
// keysInput. Missing or non-scalar attributes expand to "".
func expandMacros(indexMap map[string]string, keysInput any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(keysInput)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keysInput: %w", err)
	}

	res := make(map[string]string, len(indexMap))
	for fieldName, template := range indexMap {
		res[fieldName] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			switch tv := av[strings.Trim(macro, "{}")].(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				return ""
			}
		})
	}
	return res, nil
}

// expandStringKey substitutes key for every macro in the index map.
func expandStringKey(indexMap map[string]string, key string) map[string]string {
	expanded := make(map[string]string, len(indexMap))
	for field, template := range indexMap {
		expanded[field] = macroPattern.ReplaceAllLiteralString(template, key)
	}
	return expanded
}

// buildKeyFromExpanded builds the primary key from the expanded index map.
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}
