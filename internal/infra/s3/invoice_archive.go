// Package s3 implements the write-only invoice archive over an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"log/slog"

	"order-service/internal/infra"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

type API interface {
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

type InvoiceArchive struct {
	client API
	bucket string
	logger *slog.Logger
}

func NewInvoiceArchive(client API, bucket string, logger *slog.Logger) *InvoiceArchive {
	return &InvoiceArchive{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Put stores the invoice body under the given key. Keys embed the order id,
// so each key is written once in practice; no read path exists.
func (a *InvoiceArchive) Put(ctx context.Context, key string, body []byte) error {
	_, err := a.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return infra.WrapDepErr(a.logger, infra.KindArchiveUnavailable, "failed to put invoice "+key, err)
	}

	a.logger.Info("invoice written", "bucket", a.bucket, "key", key)
	return nil
}
