package database

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// DynamoDBConfig describes how to reach DynamoDB. Local DynamoDB does not
// validate credentials, but the AWS SDK requires them, hence the defaults.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Table           string
}

// ConnectDynamoDB builds a client and waits until the sessions table answers
// DescribeTable, retrying with exponential backoff.
func ConnectDynamoDB(ctx context.Context, cfg DynamoDBConfig, logger *zap.Logger) (*dynamodb.Client, error) {
	const operation = "database.ConnectDynamoDB"

	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: load config: %w", operation, err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	logger.Info("Connecting to DynamoDB...", zap.String("table", cfg.Table))
	err = backoff.RetryNotify(
		func() error {
			_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(cfg.Table)})
			if err != nil {
				return fmt.Errorf("describe table: %w", err)
			}
			return nil
		},
		backoff.WithContext(startupBackOff(), ctx),
		func(err error, next time.Duration) {
			logger.Warn("DynamoDB not reachable, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	logger.Info("Successfully connected to DynamoDB")
	return client, nil
}

func NewDynamoDBConfig(ctx context.Context, cfg DynamoDBConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(
		defaultString(cfg.AccessKeyID, "local"),
		defaultString(cfg.SecretAccessKey, "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(defaultString(cfg.Region, "us-east-1")),
		config.WithCredentialsProvider(creds),
	)
}

func defaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
