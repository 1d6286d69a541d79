// cmd/preview/main.go
//
// One-shot campaign generation from the command line, using the same wiring
// as the server. Handy for trying prompts and providers without an HTTP
// round-trip: TEXT_PROVIDER=mock IMAGE_PROVIDER=mock go run ./cmd/preview -goal "..."
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"

	"github.com/pracharai/campaign-backend/internal/ai"
	"github.com/pracharai/campaign-backend/internal/config"
	"github.com/pracharai/campaign-backend/internal/logx"
	"github.com/pracharai/campaign-backend/internal/model"
	"github.com/pracharai/campaign-backend/internal/repository"
	"github.com/pracharai/campaign-backend/internal/service"
	"github.com/pracharai/campaign-backend/internal/storage"
)

func main() {
	goal := flag.String("goal", "", "marketing goal to generate a campaign for")
	user := flag.String("user", "anonymous", "user id to stamp on the record")
	brandContext := flag.String("brand-context", "", "brand guidelines passed to the model")
	flag.Parse()

	if *goal == "" {
		fmt.Fprintln(os.Stderr, `usage: preview -goal "..." [-user id] [-brand-context "..."]`)
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg := config.Load()
	logx.Init(cfg.LogLevel)
	defer logx.Sync()

	if err := cfg.Validate(); err != nil {
		logx.L().Fatalw("invalid configuration", "error", err)
	}

	ctx := context.Background()

	awsOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
	if cfg.AWSAccessKeyID != "" {
		awsOpts = append(awsOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOpts...)
	if err != nil {
		logx.L().Fatalw("failed to load AWS configuration", "error", err)
	}

	bedrock := bedrockruntime.NewFromConfig(awsCfg)

	var llm ai.LLMClient
	switch cfg.TextProvider {
	case config.ProviderOpenAI:
		llm = ai.NewOpenAIText(cfg.TextModel, cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	case config.ProviderMock:
		llm = ai.MockLLM{}
	default:
		llm = &ai.BedrockText{
			Client:           bedrock,
			Model:            cfg.TextModel,
			GuardrailID:      cfg.GuardrailID,
			GuardrailVersion: cfg.GuardrailVersion,
		}
	}

	var image ai.ImageClient
	switch cfg.ImageProvider {
	case config.ProviderOpenAI:
		image = ai.NewOpenAIImage(cfg.ImageModel, cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	case config.ProviderMock:
		image = ai.MockImage{}
	default:
		image = &ai.BedrockImage{Client: bedrock, Model: cfg.ImageModel}
	}

	campaignService := &service.CampaignService{
		LLM:   llm,
		Image: image,
		Uploader: &storage.S3Uploader{
			Client: s3.NewFromConfig(awsCfg),
			Bucket: cfg.S3Bucket,
			Prefix: cfg.S3KeyPrefix,
		},
		Store: &repository.DynamoCampaignRepository{
			Client: dynamodb.NewFromConfig(awsCfg),
			Table:  cfg.DynamoTable,
		},
		PlaceholderURL: cfg.PlaceholderImageURL,
	}

	record := campaignService.GenerateCampaign(ctx, model.GenerateRequest{
		Goal:         *goal,
		UserID:       *user,
		BrandContext: *brandContext,
	})

	out, _ := json.MarshalIndent(record, "", "  ")
	fmt.Println(string(out))
}
