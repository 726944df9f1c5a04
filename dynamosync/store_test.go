package dynamosync

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/loomworks/weft/record"
)

// fakeClient captures inputs and returns canned outputs.
type fakeClient struct {
	putIn     *dynamodb.PutItemInput
	putErr    error
	getIn     *dynamodb.GetItemInput
	getOut    *dynamodb.GetItemOutput
	getErr    error
	updateIn  *dynamodb.UpdateItemInput
	updateErr error
	deleteIn  *dynamodb.DeleteItemInput
	deleteErr error
}

func (f *fakeClient) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeClient) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, f.getErr
	}
	return f.getOut, f.getErr
}

func (f *fakeClient) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	return &dynamodb.UpdateItemOutput{}, f.updateErr
}

func (f *fakeClient) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteIn = in
	return &dynamodb.DeleteItemOutput{}, f.deleteErr
}

func TestCreateStampsManagedFields(t *testing.T) {
	client := &fakeClient{}
	s := New(client, DefaultConfig())

	_, err := s.Sync(context.Background(), record.MethodCreate, "customer", record.Attrs{
		"id":   "42",
		"name": "Ada",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := client.putIn
	if in == nil {
		t.Fatal("expected PutItem to be called")
	}
	if *in.TableName != "weft_customer" {
		t.Errorf("expected table 'weft_customer', got %q", *in.TableName)
	}
	if *in.ConditionExpression != "attribute_not_exists(id)" {
		t.Errorf("unexpected condition expression %q", *in.ConditionExpression)
	}
	if v, ok := in.Item["record_type"].(*types.AttributeValueMemberS); !ok || v.Value != "customer" {
		t.Errorf("expected record_type 'customer', got %v", in.Item["record_type"])
	}
	for _, k := range []string{"created_at", "updated_at"} {
		if _, ok := in.Item[k]; !ok {
			t.Errorf("expected managed field %q to be stamped", k)
		}
	}
}

func TestCreateAlreadyExists(t *testing.T) {
	client := &fakeClient{putErr: &types.ConditionalCheckFailedException{}}
	s := New(client, DefaultConfig())

	_, err := s.Sync(context.Background(), record.MethodCreate, "customer", record.Attrs{"id": "42"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateMissingID(t *testing.T) {
	s := New(&fakeClient{}, DefaultConfig())

	_, err := s.Sync(context.Background(), record.MethodCreate, "customer", record.Attrs{"name": "Ada"})
	if !errors.Is(err, ErrMissingID) {
		t.Errorf("expected ErrMissingID, got %v", err)
	}
}

func TestReadStripsManagedFields(t *testing.T) {
	client := &fakeClient{
		getOut: &dynamodb.GetItemOutput{
			Item: map[string]types.AttributeValue{
				"id":          &types.AttributeValueMemberS{Value: "42"},
				"name":        &types.AttributeValueMemberS{Value: "Ada"},
				"record_type": &types.AttributeValueMemberS{Value: "customer"},
				"created_at":  &types.AttributeValueMemberS{Value: "2026-01-01T00:00:00Z"},
				"updated_at":  &types.AttributeValueMemberS{Value: "2026-01-02T00:00:00Z"},
			},
		},
	}
	s := New(client, DefaultConfig())

	attrs, err := s.Sync(context.Background(), record.MethodRead, "customer", record.Attrs{"id": "42"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if attrs["name"] != "Ada" {
		t.Errorf("expected name 'Ada', got %v", attrs["name"])
	}
	for _, k := range []string{"record_type", "created_at", "updated_at"} {
		if _, ok := attrs[k]; ok {
			t.Errorf("expected managed field %q to be stripped from reads", k)
		}
	}
	if v, ok := client.getIn.Key["id"].(*types.AttributeValueMemberS); !ok || v.Value != "42" {
		t.Errorf("expected key id '42', got %v", client.getIn.Key["id"])
	}
}

func TestReadNotFound(t *testing.T) {
	s := New(&fakeClient{}, DefaultConfig())

	_, err := s.Sync(context.Background(), record.MethodRead, "customer", record.Attrs{"id": "42"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateBuildsSetExpression(t *testing.T) {
	client := &fakeClient{}
	s := New(client, DefaultConfig())

	_, err := s.Sync(context.Background(), record.MethodUpdate, "customer", record.Attrs{
		"id":   "42",
		"name": "Grace",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := client.updateIn
	if in == nil {
		t.Fatal("expected UpdateItem to be called")
	}
	if !strings.HasPrefix(*in.UpdateExpression, "SET ") {
		t.Errorf("expected a SET expression, got %q", *in.UpdateExpression)
	}
	if *in.ConditionExpression != "attribute_exists(id)" {
		t.Errorf("unexpected condition expression %q", *in.ConditionExpression)
	}

	var names []string
	for _, attr := range in.ExpressionAttributeNames {
		names = append(names, attr)
	}
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "name") {
		t.Errorf("expected 'name' among expression attributes, got %q", joined)
	}
	if strings.Contains(joined, "id") {
		t.Errorf("expected the key attribute to be excluded, got %q", joined)
	}
}

func TestUpdateNotFound(t *testing.T) {
	client := &fakeClient{updateErr: &types.ConditionalCheckFailedException{}}
	s := New(client, DefaultConfig())

	_, err := s.Sync(context.Background(), record.MethodUpdate, "customer", record.Attrs{"id": "42"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByID(t *testing.T) {
	client := &fakeClient{}
	s := New(client, DefaultConfig())

	_, err := s.Sync(context.Background(), record.MethodDelete, "customer", record.Attrs{"id": "42"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.deleteIn == nil {
		t.Fatal("expected DeleteItem to be called")
	}
	if v, ok := client.deleteIn.Key["id"].(*types.AttributeValueMemberS); !ok || v.Value != "42" {
		t.Errorf("expected key id '42', got %v", client.deleteIn.Key["id"])
	}
}

func TestUnknownMethod(t *testing.T) {
	s := New(&fakeClient{}, DefaultConfig())

	_, err := s.Sync(context.Background(), record.Method("patch"), "customer", record.Attrs{"id": "42"})
	if !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestTableForOverride(t *testing.T) {
	cfg := Config{
		Tables: map[string]string{"customer": "crm_customers"},
	}
	cfg.validate()

	if got := cfg.tableFor("customer"); got != "crm_customers" {
		t.Errorf("expected override table, got %q", got)
	}
	if got := cfg.tableFor("order"); got != "weft_order" {
		t.Errorf("expected prefixed fallback, got %q", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TablePrefix != "weft_" {
		t.Errorf("expected TablePrefix 'weft_', got %q", cfg.TablePrefix)
	}
}
