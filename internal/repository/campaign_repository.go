// internal/repository/campaign_repository.go
package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/pracharai/campaign-backend/internal/model"
)

// CampaignStore persists finished campaign records.
type CampaignStore interface {
	Put(ctx context.Context, record *model.CampaignRecord) error
}

// PutItemAPI is the slice of the DynamoDB client this package uses.
type PutItemAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoCampaignRepository writes campaign records to a DynamoDB table.
// Records always carry a fresh UUID, so every write is a plain insert with no
// conflict handling.
type DynamoCampaignRepository struct {
	Client PutItemAPI
	Table  string
}

func (r *DynamoCampaignRepository) Put(ctx context.Context, record *model.CampaignRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return err
	}

	_, err = r.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.Table),
		Item:      item,
	})
	return err
}
