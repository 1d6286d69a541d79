package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pracharai/campaign-backend/internal/model"
	"github.com/pracharai/campaign-backend/internal/repository"
)

type fakePutItemAPI struct {
	in  *dynamodb.PutItemInput
	err error
}

func (f *fakePutItemAPI) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func TestPut(t *testing.T) {
	api := &fakePutItemAPI{}
	repo := &repository.DynamoCampaignRepository{Client: api, Table: "prachar-ai-campaigns"}

	record := &model.CampaignRecord{
		CampaignID: "id-1",
		UserID:     "anonymous",
		Goal:       "g",
		Plan:       model.CampaignPlan{Hook: "h", Offer: "o", CTA: "c"},
		Captions:   []string{"a", "b", "c"},
		ImageURL:   "https://b.s3.amazonaws.com/campaigns/p.png",
		Status:     model.StatusCompleted,
		CreatedAt:  "2026-08-30T12:00:00Z",
	}
	require.NoError(t, repo.Put(context.Background(), record))

	require.NotNil(t, api.in)
	assert.Equal(t, "prachar-ai-campaigns", *api.in.TableName)

	id, ok := api.in.Item["campaign_id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "id-1", id.Value)

	status, ok := api.in.Item["status"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "completed", status.Value)

	captions, ok := api.in.Item["captions"].(*types.AttributeValueMemberL)
	require.True(t, ok)
	assert.Len(t, captions.Value, 3)

	plan, ok := api.in.Item["plan"].(*types.AttributeValueMemberM)
	require.True(t, ok)
	hook, ok := plan.Value["hook"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "h", hook.Value)
}

func TestPutError(t *testing.T) {
	repo := &repository.DynamoCampaignRepository{
		Client: &fakePutItemAPI{err: errors.New("table missing")},
		Table:  "t",
	}

	err := repo.Put(context.Background(), &model.CampaignRecord{CampaignID: "x"})
	assert.Error(t, err)
}
