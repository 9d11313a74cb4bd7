package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/store/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSnapshotsTableName = "quotely-snapshots"

// keyPrefix namespaces the snapshot keys of this application.
const keyPrefix = "quotely-"

// quotesKey doubles as the existence marker: a snapshot without it has
// never been saved.
const quotesKey = keyPrefix + "quotes"

// snapshotItem is one collection persisted under its namespaced key.
//
// Table requirements:
//   - PK: key (string)
type snapshotItem struct {
	Key       string `dynamodbav:"key"`
	Data      string `dynamodbav:"data"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SnapshotDynamoRepository persists the seven-collection snapshot in
// DynamoDB, one item per collection. Save writes all items in a single
// transaction so a snapshot is never observed half-written.
type SnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISnapshotStore = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb *dynamodb.Client) *SnapshotDynamoRepository {
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

// collections pairs every namespaced key with its slice in the snapshot.
func collections(snap *entities.Snapshot) []struct {
	key    string
	target any
} {
	return []struct {
		key    string
		target any
	}{
		{quotesKey, &snap.Quotes},
		{keyPrefix + "templates", &snap.Templates},
		{keyPrefix + "projects", &snap.Projects},
		{keyPrefix + "contacts", &snap.Contacts},
		{keyPrefix + "domains", &snap.Domains},
		{keyPrefix + "sections", &snap.Sections},
		{keyPrefix + "lineItems", &snap.LineItems},
	}
}

func (r *SnapshotDynamoRepository) Load(ctx context.Context) (*entities.Snapshot, bool, error) {
	marker, err := r.getItem(ctx, quotesKey)
	if err != nil {
		return nil, false, err
	}
	if marker == nil {
		return nil, false, nil
	}

	snap := &entities.Snapshot{}
	for _, col := range collections(snap) {
		it, err := r.getItem(ctx, col.key)
		if err != nil {
			return nil, false, err
		}
		if it == nil {
			continue
		}
		if err := json.Unmarshal([]byte(it.Data), col.target); err != nil {
			return nil, false, fmt.Errorf("decode %s: %w", col.key, err)
		}
	}
	return snap, true, nil
}

// Save persists all seven collections together via TransactWriteItems.
func (r *SnapshotDynamoRepository) Save(ctx context.Context, snap *entities.Snapshot) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	writes := make([]types.TransactWriteItem, 0, 7)
	for _, col := range collections(snap) {
		data, err := json.Marshal(col.target)
		if err != nil {
			return fmt.Errorf("encode %s: %w", col.key, err)
		}
		av, err := attributevalue.MarshalMap(snapshotItem{
			Key:       col.key,
			Data:      string(data),
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item:      av,
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	return err
}

func (r *SnapshotDynamoRepository) getItem(ctx context.Context, key string) (*snapshotItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return &it, nil
}
