package dynamosync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/loomworks/weft/record"
)

// managedKeys are bookkeeping attributes owned by the store. They are
// stamped on writes and stripped from read results.
var managedKeys = []string{"record_type", "created_at", "updated_at"}

// DynamoAPI is the subset of the DynamoDB client used by the Store.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Store provides DynamoDB persistence for record payloads.
type Store struct {
	client DynamoAPI
	config Config
}

var _ record.Syncer = (*Store)(nil)

// New creates a new Store instance.
func New(client DynamoAPI, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
	}
}

// Sync dispatches a persistence operation for the given record type.
func (s *Store) Sync(ctx context.Context, method record.Method, typeName string, payload record.Attrs) (record.Attrs, error) {
	table := s.config.tableFor(typeName)

	switch method {
	case record.MethodCreate:
		return nil, s.create(ctx, table, typeName, payload)
	case record.MethodRead:
		return s.read(ctx, table, payload)
	case record.MethodUpdate:
		return nil, s.update(ctx, table, typeName, payload)
	case record.MethodDelete:
		return nil, s.delete(ctx, table, payload)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

// create puts a new item, failing if the id already exists.
func (s *Store) create(ctx context.Context, table, typeName string, payload record.Attrs) error {
	if _, err := key(payload); err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(map[string]any(payload))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	item["record_type"] = &types.AttributeValueMemberS{Value: typeName}
	item["created_at"] = &types.AttributeValueMemberS{Value: now}
	item["updated_at"] = &types.AttributeValueMemberS{Value: now}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})

	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return ErrAlreadyExists
	}
	return err
}

// read fetches an item by id and returns its attributes without the
// store-managed bookkeeping fields.
func (s *Store) read(ctx context.Context, table string, payload record.Attrs) (record.Attrs, error) {
	k, err := key(payload)
	if err != nil {
		return nil, err
	}

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       k,
	})
	if err != nil {
		return nil, err
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}

	var attrs map[string]any
	if err := attributevalue.UnmarshalMap(result.Item, &attrs); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	for _, mk := range managedKeys {
		delete(attrs, mk)
	}
	return record.Attrs(attrs), nil
}

// update applies the payload to an existing item via a SET expression.
func (s *Store) update(ctx context.Context, table, typeName string, payload record.Attrs) error {
	k, err := key(payload)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var setClauses []string
	exprNames := map[string]string{
		"#record_type": "record_type",
		"#updated_at":  "updated_at",
	}
	exprValues := map[string]types.AttributeValue{
		":record_type": &types.AttributeValueMemberS{Value: typeName},
		":updated_at":  &types.AttributeValueMemberS{Value: now},
	}

	i := 0
	for attr, v := range payload {
		if attr == "id" || isManaged(attr) {
			continue
		}
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %q: %w", attr, err)
		}
		nameKey := fmt.Sprintf("#attr%d", i)
		valueKey := fmt.Sprintf(":val%d", i)
		exprNames[nameKey] = attr
		exprValues[valueKey] = av
		setClauses = append(setClauses, fmt.Sprintf("%s = %s", nameKey, valueKey))
		i++
	}

	setClauses = append(setClauses, "#record_type = :record_type", "#updated_at = :updated_at")
	updateExpr := "SET " + strings.Join(setClauses, ", ")

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       k,
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
	})

	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return ErrNotFound
	}
	return err
}

// delete removes an item by id. Deleting a missing item is not an error.
func (s *Store) delete(ctx context.Context, table string, payload record.Attrs) error {
	k, err := key(payload)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       k,
	})
	return err
}

// key builds the primary key from the payload's id attribute.
func key(payload record.Attrs) (map[string]types.AttributeValue, error) {
	id, ok := payload["id"]
	if !ok || id == nil {
		return nil, ErrMissingID
	}
	av, err := attributevalue.Marshal(id)
	if err != nil {
		return nil, fmt.Errorf("marshal id: %w", err)
	}
	return map[string]types.AttributeValue{"id": av}, nil
}

func isManaged(attr string) bool {
	for _, mk := range managedKeys {
		if attr == mk {
			return true
		}
	}
	return false
}
