// cmd/server/main.go
package main

import (
	"context"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/pracharai/campaign-backend/internal/ai"
	"github.com/pracharai/campaign-backend/internal/auth"
	"github.com/pracharai/campaign-backend/internal/config"
	"github.com/pracharai/campaign-backend/internal/controller"
	"github.com/pracharai/campaign-backend/internal/logx"
	"github.com/pracharai/campaign-backend/internal/repository"
	"github.com/pracharai/campaign-backend/internal/service"
	"github.com/pracharai/campaign-backend/internal/storage"
)

func main() {
	// Load .env
	envMissing := godotenv.Load() != nil

	cfg := config.Load()
	logx.Init(cfg.LogLevel)
	defer logx.Sync()

	if envMissing {
		logx.L().Info("no .env file found, relying on OS environment variables")
	}
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

	uploader := &storage.S3Uploader{
		Client: s3.NewFromConfig(awsCfg),
		Bucket: cfg.S3Bucket,
		Prefix: cfg.S3KeyPrefix,
	}

	campaignRepo := &repository.DynamoCampaignRepository{
		Client: dynamodb.NewFromConfig(awsCfg),
		Table:  cfg.DynamoTable,
	}

	campaignService := &service.CampaignService{
		LLM:            llm,
		Image:          image,
		Uploader:       uploader,
		Store:          campaignRepo,
		PlaceholderURL: cfg.PlaceholderImageURL,
	}

	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(controller.Recover)
	r.Use(controller.CORS)
	r.Use(auth.Middleware)

	// Campaign routes
	r.Post("/campaigns", campaignController.Generate)
	r.Post("/campaigns/captions", campaignController.RegenerateCaptions)
	r.Get("/healthz", campaignController.Healthz)

	logx.L().Infow("server running",
		"port", cfg.Port,
		"table", cfg.DynamoTable,
		"bucket", cfg.S3Bucket,
		"text_provider", cfg.TextProvider,
		"image_provider", cfg.ImageProvider,
	)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logx.L().Fatalw("server stopped", "error", err)
	}
}
