//go:build unit

package dynamo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"order-service/internal/domain/order"
	"order-service/internal/infra"
	"order-service/internal/infra/dynamo"
	"order-service/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamoAPI struct {
	getItem        func(*awsdynamodb.GetItemInput) (*awsdynamodb.GetItemOutput, error)
	putItem        func(*awsdynamodb.PutItemInput) (*awsdynamodb.PutItemOutput, error)
	query          func(*awsdynamodb.QueryInput) (*awsdynamodb.QueryOutput, error)
	scan           func(*awsdynamodb.ScanInput) (*awsdynamodb.ScanOutput, error)
	batchWriteItem func(*awsdynamodb.BatchWriteItemInput) (*awsdynamodb.BatchWriteItemOutput, error)
}

func (f *fakeDynamoAPI) GetItem(_ context.Context, params *awsdynamodb.GetItemInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.GetItemOutput, error) {
	return f.getItem(params)
}

func (f *fakeDynamoAPI) PutItem(_ context.Context, params *awsdynamodb.PutItemInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.PutItemOutput, error) {
	return f.putItem(params)
}

func (f *fakeDynamoAPI) Query(_ context.Context, params *awsdynamodb.QueryInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.QueryOutput, error) {
	return f.query(params)
}

func (f *fakeDynamoAPI) Scan(_ context.Context, params *awsdynamodb.ScanInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.ScanOutput, error) {
	return f.scan(params)
}

func (f *fakeDynamoAPI) BatchWriteItem(_ context.Context, params *awsdynamodb.BatchWriteItemInput, _ ...func(*awsdynamodb.Options)) (*awsdynamodb.BatchWriteItemOutput, error) {
	return f.batchWriteItem(params)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func itemFor(t *testing.T, rec order.Record) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(rec)
	require.NoError(t, err)
	return item
}

func TestRecordStore_FindByID(t *testing.T) {
	rec := order.Record{ID: "order-1", Type: order.TypeOrders, ProductID: "p1", Quantity: 5, StoreID: "store-1", Created: "2024-03-01T12:00:00Z"}

	t.Run("existing record round-trips", func(t *testing.T) {
		api := &fakeDynamoAPI{
			getItem: func(in *awsdynamodb.GetItemInput) (*awsdynamodb.GetItemOutput, error) {
				assert.Equal(t, "orders", *in.TableName)
				key, ok := in.Key["id"].(*types.AttributeValueMemberS)
				require.True(t, ok)
				assert.Equal(t, "order-1", key.Value)
				return &awsdynamodb.GetItemOutput{Item: itemFor(t, rec)}, nil
			},
		}
		store := dynamo.NewRecordStore(api, "orders", false, testLogger())

		got, err := store.FindByID(context.Background(), "order-1")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, rec, *got)
	})

	t.Run("absent record returns nil without error", func(t *testing.T) {
		api := &fakeDynamoAPI{
			getItem: func(*awsdynamodb.GetItemInput) (*awsdynamodb.GetItemOutput, error) {
				return &awsdynamodb.GetItemOutput{Item: nil}, nil
			},
		}
		store := dynamo.NewRecordStore(api, "orders", false, testLogger())

		got, err := store.FindByID(context.Background(), "missing")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("transport failure surfaces as store unavailability", func(t *testing.T) {
		api := &fakeDynamoAPI{
			getItem: func(*awsdynamodb.GetItemInput) (*awsdynamodb.GetItemOutput, error) {
				return nil, errs.New("connection refused")
			},
		}
		store := dynamo.NewRecordStore(api, "orders", false, testLogger())

		_, err := store.FindByID(context.Background(), "order-1")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindStoreUnavailable))
	})
}

func TestRecordStore_RecordsByType(t *testing.T) {
	orders := []order.Record{
		{ID: "a", Type: order.TypeOrders, ProductID: "p1", Quantity: 1, StoreID: "store-1", Created: "2024-03-01T12:00:00Z"},
		{ID: "b", Type: order.TypeOrders, ProductID: "p2", Quantity: 2, StoreID: "store-2", Created: "2024-03-01T13:00:00Z"},
	}
	stores := []order.Record{
		{ID: "store-1", Type: order.TypeStores, StoreCode: "NEW", StoreName: "Newcastle"},
	}

	t.Run("query uses the type index", func(t *testing.T) {
		api := &fakeDynamoAPI{
			query: func(in *awsdynamodb.QueryInput) (*awsdynamodb.QueryOutput, error) {
				assert.Equal(t, order.TypeIndexName, *in.IndexName)
				assert.Equal(t, "#type = :type", *in.KeyConditionExpression)
				cond, ok := in.ExpressionAttributeValues[":type"].(*types.AttributeValueMemberS)
				require.True(t, ok)
				assert.Equal(t, order.TypeOrders, cond.Value)

				items := make([]map[string]types.AttributeValue, 0, len(orders))
				for _, rec := range orders {
					items = append(items, itemFor(t, rec))
				}
				return &awsdynamodb.QueryOutput{Items: items}, nil
			},
		}
		store := dynamo.NewRecordStore(api, "orders", false, testLogger())

		got, err := store.RecordsByType(context.Background(), order.TypeOrders)

		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("legacy scan filters client-side", func(t *testing.T) {
		api := &fakeDynamoAPI{
			scan: func(in *awsdynamodb.ScanInput) (*awsdynamodb.ScanOutput, error) {
				assert.Equal(t, "orders", *in.TableName)

				mixed := append(append([]order.Record{}, orders...), stores...)
				items := make([]map[string]types.AttributeValue, 0, len(mixed))
				for _, rec := range mixed {
					items = append(items, itemFor(t, rec))
				}
				return &awsdynamodb.ScanOutput{Items: items}, nil
			},
		}
		store := dynamo.NewRecordStore(api, "orders", true, testLogger())

		got, err := store.RecordsByType(context.Background(), order.TypeStores)

		require.NoError(t, err)
		assert.Equal(t, stores, got)
	})

	t.Run("query failure surfaces as store unavailability", func(t *testing.T) {
		api := &fakeDynamoAPI{
			query: func(*awsdynamodb.QueryInput) (*awsdynamodb.QueryOutput, error) {
				return nil, errs.New("throttled")
			},
		}
		store := dynamo.NewRecordStore(api, "orders", false, testLogger())

		_, err := store.RecordsByType(context.Background(), order.TypeOrders)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindStoreUnavailable))
	})
}

func TestRecordStore_BatchPut(t *testing.T) {
	seeds := order.SeedStores()

	t.Run("writes all records in one batch", func(t *testing.T) {
		api := &fakeDynamoAPI{
			batchWriteItem: func(in *awsdynamodb.BatchWriteItemInput) (*awsdynamodb.BatchWriteItemOutput, error) {
				writes := in.RequestItems["orders"]
				require.Len(t, writes, len(seeds))
				for _, w := range writes {
					require.NotNil(t, w.PutRequest)
				}
				return &awsdynamodb.BatchWriteItemOutput{}, nil
			},
		}
		store := dynamo.NewRecordStore(api, "orders", false, testLogger())

		require.NoError(t, store.BatchPut(context.Background(), seeds))
	})

	t.Run("unprocessed items are a hard failure naming the ids", func(t *testing.T) {
		api := &fakeDynamoAPI{
			batchWriteItem: func(in *awsdynamodb.BatchWriteItemInput) (*awsdynamodb.BatchWriteItemOutput, error) {
				leftover := in.RequestItems["orders"][:1]
				return &awsdynamodb.BatchWriteItemOutput{
					UnprocessedItems: map[string][]types.WriteRequest{
						"orders": leftover,
					},
				}, nil
			},
		}
		store := dynamo.NewRecordStore(api, "orders", false, testLogger())

		err := store.BatchPut(context.Background(), seeds)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindUnprocessedItems))
		assert.Contains(t, err.Error(), seeds[0].ID)
	})
}
