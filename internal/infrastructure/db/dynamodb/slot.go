package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

// API is the subset of the DynamoDB client used by Slot.
type API interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type slotItem struct {
	Name      string `dynamodbav:"name"`
	Payload   []byte `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// Slot stores the snapshot payload as one item of table.
//
// Table requirements:
//   - PK: name (string)
type Slot struct {
	ddb   API
	table string
	name  string
}

// NewSlot creates a Slot stored in table under key name.
func NewSlot(ddb API, table, name string) *Slot {
	return &Slot{ddb: ddb, table: table, name: name}
}

func (s *Slot) Name() string { return s.name }

// Load returns domain.ErrSlotEmpty when the item does not exist.
func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: s.name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb get %s: %w", s.name, err)
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrSlotEmpty
	}

	var it slotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("dynamodb decode %s: %w", s.name, err)
	}
	return it.Payload, nil
}

func (s *Slot) Save(ctx context.Context, payload []byte) error {
	av, err := attributevalue.MarshalMap(slotItem{
		Name:      s.name,
		Payload:   payload,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("dynamodb encode %s: %w", s.name, err)
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put %s: %w", s.name, err)
	}
	return nil
}

// Ping checks that the table exists and is reachable.
func (s *Slot) Ping(ctx context.Context) error {
	_, err := s.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.table)})
	return err
}

var _ ports.Slot = (*Slot)(nil)
