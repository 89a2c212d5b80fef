package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agencia_maker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultKVTableName = "agencia_maker_kv"

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     []byte `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoStore persists values in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
//
// Each collection is one item; value holds the raw JSON document as binary.
type DynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IKeyValueStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client, tableName string) *DynamoStore {
	if tableName == "" {
		tableName = defaultKVTableName
	}
	return &DynamoStore{ddb: ddb, tableName: tableName}
}

// EnsureTable creates the table with on-demand billing when it is missing.
// Intended for local DynamoDB; managed tables are normally provisioned
// outside the service.
func (s *DynamoStore) EnsureTable(ctx context.Context) error {
	_, err := s.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tableName)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return fmt.Errorf("failed to describe table %s: %w", s.tableName, err)
	}

	_, err = s.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("key"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("key"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return fmt.Errorf("failed to create table %s: %w", s.tableName, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(s.ddb)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tableName)}, 30*time.Second)
}

func (s *DynamoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return it.Value, true, nil
}

func (s *DynamoStore) Put(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
