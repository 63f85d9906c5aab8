package bootstrap

import (
	"context"

	"order-service/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/appconfigdata"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"
)

// AWSModule constructs the external service clients once per process. The
// clients are goroutine safe; the handlers stay stateless.
var AWSModule = fx.Module("aws",
	fx.Provide(
		NewAWSConfig,
		NewDynamoDBClient,
		NewS3Client,
		NewAppConfigDataClient,
	),
)

func NewAWSConfig(cfg config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWS.Region),
	)
}

func NewDynamoDBClient(awsCfg aws.Config, cfg config.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})
}

func NewS3Client(awsCfg aws.Config, cfg config.Config) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
			o.UsePathStyle = true
		}
	})
}

func NewAppConfigDataClient(awsCfg aws.Config, cfg config.Config) *appconfigdata.Client {
	return appconfigdata.NewFromConfig(awsCfg, func(o *appconfigdata.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})
}
