// Package dynamo implements the record store over a single DynamoDB table
// with a type discriminator and a secondary index over it.
package dynamo

import (
	"context"
	"log/slog"
	"strings"

	"order-service/internal/domain/order"
	"order-service/internal/infra"
	"order-service/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

type RecordStore struct {
	client     API
	table      string
	legacyScan bool
	logger     *slog.Logger
}

func NewRecordStore(client API, table string, legacyScan bool, logger *slog.Logger) *RecordStore {
	return &RecordStore{
		client:     client,
		table:      table,
		legacyScan: legacyScan,
		logger:     logger,
	}
}

// FindByID returns (nil, nil) when no record exists; absence is not an
// error, the caller classifies it.
func (s *RecordStore) FindByID(ctx context.Context, id string) (*order.Record, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, infra.WrapDepErr(s.logger, infra.KindStoreUnavailable, "failed to get record", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var rec order.Record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, infra.WrapDepErr(s.logger, infra.KindStoreUnavailable, "failed to unmarshal record", err)
	}
	return &rec, nil
}

// Put upserts by id; last write wins.
func (s *RecordStore) Put(ctx context.Context, rec order.Record) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return infra.WrapDepErr(s.logger, infra.KindStoreUnavailable, "failed to marshal record", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return infra.WrapDepErr(s.logger, infra.KindStoreUnavailable, "failed to put record", err)
	}
	return nil
}

// RecordsByType returns every record sharing the discriminator, in index
// order. The legacy full-scan variant is kept only for parity with older
// deployments and is O(total records).
func (s *RecordStore) RecordsByType(ctx context.Context, recordType string) ([]order.Record, error) {
	if s.legacyScan {
		return s.scanByType(ctx, recordType)
	}
	return s.queryByType(ctx, recordType)
}

func (s *RecordStore) queryByType(ctx context.Context, recordType string) ([]order.Record, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		IndexName:              aws.String(order.TypeIndexName),
		KeyConditionExpression: aws.String("#type = :type"),
		ExpressionAttributeNames: map[string]string{
			"#type": "type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":type": &types.AttributeValueMemberS{Value: recordType},
		},
	})
	if err != nil {
		return nil, infra.WrapDepErr(s.logger, infra.KindStoreUnavailable, "failed to query records by type", err)
	}

	var recs []order.Record
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &recs); err != nil {
		return nil, infra.WrapDepErr(s.logger, infra.KindStoreUnavailable, "failed to unmarshal records", err)
	}
	return recs, nil
}

// Deprecated: scanByType filters client-side; use the type index query.
func (s *RecordStore) scanByType(ctx context.Context, recordType string) ([]order.Record, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, infra.WrapDepErr(s.logger, infra.KindStoreUnavailable, "failed to scan records", err)
	}

	var all []order.Record
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &all); err != nil {
		return nil, infra.WrapDepErr(s.logger, infra.KindStoreUnavailable, "failed to unmarshal records", err)
	}

	recs := make([]order.Record, 0, len(all))
	for _, rec := range all {
		if rec.Type == recordType {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

// BatchPut writes all records in one batch. Any unprocessed item is a hard
// failure naming the unapplied ids; partial success is never silent.
func (s *RecordStore) BatchPut(ctx context.Context, recs []order.Record) error {
	writes := make([]types.WriteRequest, 0, len(recs))
	for _, rec := range recs {
		item, err := attributevalue.MarshalMap(rec)
		if err != nil {
			return infra.WrapDepErr(s.logger, infra.KindStoreUnavailable, "failed to marshal record", err)
		}
		writes = append(writes, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}

	out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{
			s.table: writes,
		},
	})
	if err != nil {
		return infra.WrapDepErr(s.logger, infra.KindStoreUnavailable, "failed to batch write records", err)
	}

	if unprocessed := out.UnprocessedItems[s.table]; len(unprocessed) > 0 {
		ids := make([]string, 0, len(unprocessed))
		for _, w := range unprocessed {
			if w.PutRequest == nil {
				continue
			}
			if v, ok := w.PutRequest.Item["id"].(*types.AttributeValueMemberS); ok {
				ids = append(ids, v.Value)
			}
		}
		return infra.WrapDepErr(s.logger, infra.KindUnprocessedItems,
			"batch write left unprocessed items: "+strings.Join(ids, ", "),
			errs.New("unprocessed items"))
	}
	return nil
}
