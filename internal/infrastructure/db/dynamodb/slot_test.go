package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/supercash/backoffice/internal/core/domain"
)

type stubAPI struct {
	items map[string]map[string]types.AttributeValue
	table string
}

func newStubAPI() *stubAPI {
	return &stubAPI{items: map[string]map[string]types.AttributeValue{}}
}

func (s *stubAPI) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	s.table = *in.TableName
	key := in.Key["name"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: s.items[key]}, nil
}

func (s *stubAPI) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	s.table = *in.TableName
	key := in.Item["name"].(*types.AttributeValueMemberS).Value
	s.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (s *stubAPI) DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{}, nil
}

func TestSlot_SaveLoad(t *testing.T) {
	api := newStubAPI()
	slot := NewSlot(api, "supercash-slots", "supercash-storage")
	ctx := context.Background()

	if _, err := slot.Load(ctx); !errors.Is(err, domain.ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}

	if err := slot.Save(ctx, []byte(`{"version":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if api.table != "supercash-slots" {
		t.Errorf("wrong table %q", api.table)
	}
	if _, ok := api.items["supercash-storage"]["payload"].(*types.AttributeValueMemberB); !ok {
		t.Errorf("payload should be stored as binary, got %T", api.items["supercash-storage"]["payload"])
	}

	got, err := slot.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"version":1}` {
		t.Errorf("got %s", got)
	}
}
