package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase/interfaces"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultSessionsTableName = "quote_sessions"

type flowSessionItem struct {
	ID        string `dynamodbav:"id"`
	Stage     string `dynamodbav:"stage"`
	Record    string `dynamodbav:"record,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// DynamoDBAPI is the subset of the DynamoDB client used by the repository.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// FlowSessionDynamoRepository persists flow sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so reads also check expires_at.
type FlowSessionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.IFlowSessionRepository = (*FlowSessionDynamoRepository)(nil)

func NewFlowSessionDynamoRepository(ddb DynamoDBAPI, tableName string, ttl time.Duration) *FlowSessionDynamoRepository {
	if tableName == "" {
		tableName = DefaultSessionsTableName
	}
	return &FlowSessionDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (r *FlowSessionDynamoRepository) Get(ctx context.Context, id string) (entities.FlowSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FlowSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.FlowSession{}, nil
	}

	var it flowSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FlowSession{}, err
	}
	if it.ExpiresAt > 0 && it.ExpiresAt <= r.now().Unix() {
		return entities.FlowSession{}, nil
	}
	return fromFlowSessionItem(it)
}

func (r *FlowSessionDynamoRepository) Save(ctx context.Context, s entities.FlowSession) error {
	it, err := toFlowSessionItem(s, r.now().Add(r.ttl))
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toFlowSessionItem(s entities.FlowSession, expiresAt time.Time) (flowSessionItem, error) {
	it := flowSessionItem{
		ID:        s.ID,
		Stage:     string(s.Stage),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: expiresAt.Unix(),
	}
	if s.Record != nil {
		b, err := json.Marshal(s.Record)
		if err != nil {
			return flowSessionItem{}, fmt.Errorf("marshal record: %w", err)
		}
		it.Record = string(b)
	}
	return it, nil
}

func fromFlowSessionItem(it flowSessionItem) (entities.FlowSession, error) {
	s := entities.FlowSession{
		ID:        it.ID,
		Stage:     entities.FlowStage(it.Stage),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if it.Record != "" {
		var rec entities.IntakeRecord
		if err := json.Unmarshal([]byte(it.Record), &rec); err != nil {
			return entities.FlowSession{}, fmt.Errorf("unmarshal record: %w", err)
		}
		s.Record = &rec
	}
	return s, nil
}

func parseTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
