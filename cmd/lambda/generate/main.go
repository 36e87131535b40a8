package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"genai-proxy-api/internal/config"
	"genai-proxy-api/internal/handlers"
	"genai-proxy-api/pkg/lambda"
)

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := lambda.GetWarmManager().Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetWarmManager().GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"success":false,"message":"Internal server error"}`,
		}, nil
	}

	promptHandler := handlers.NewPromptHandler(container.GenerateService)
	return lambda.Serve(ctx, event, promptHandler.HandleGenerate)
}

func main() {
	awslambda.Start(handler)
}
