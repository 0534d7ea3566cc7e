// Package bedrock implements the text generation port on AWS Bedrock.
package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fitcoach/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
)

// Fixed request shape for every generation call.
const (
	anthropicVersion = "bedrock-2023-05-31"
	maxTokens        = 1024
	temperature      = 0.7
	contentType      = "application/json"
)

// transportErrorCode is reported when the call failed before the provider
// produced an API error.
const transportErrorCode = "TransportError"

// Config holds the settings the gateway needs.
type Config struct {
	Region          string
	ModelID         string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

type modelInvoker interface {
	InvokeModel(ctx context.Context, in *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type modelLister interface {
	ListFoundationModels(ctx context.Context, in *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error)
}

// Gateway sends prompts to a Bedrock-hosted Anthropic model.
type Gateway struct {
	runtime modelInvoker
	control modelLister
	region  string
	modelID string
	log     zerolog.Logger
}

var _ domain.TextGenerator = (*Gateway)(nil)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	Messages         []message `json:"messages"`
}

type invokeResponse struct {
	Content []struct {
		Type string  `json:"type"`
		Text *string `json:"text"`
	} `json:"content"`
}

// New builds a Gateway from the AWS default config chain. Static credentials
// are used when both key parts are set. The SDK retryer is limited to a single
// attempt.
func New(ctx context.Context, cfg Config, log zerolog.Logger) (*Gateway, error) {
	if cfg.Region == "" {
		return nil, &domain.ConfigurationError{Key: "AWS_REGION"}
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithRetryMaxAttempts(1),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Gateway{
		runtime: bedrockruntime.NewFromConfig(awsCfg),
		control: bedrock.NewFromConfig(awsCfg),
		region:  cfg.Region,
		modelID: cfg.ModelID,
		log:     log.With().Str("component", "bedrock").Logger(),
	}, nil
}

// Region returns the configured AWS region.
func (g *Gateway) Region() string { return g.region }

// ModelID returns the configured model identifier, possibly empty.
func (g *Gateway) ModelID() string { return g.modelID }

// Generate sends prompt as a single user turn and returns the first text
// block of the reply. The call is not cancelled when ctx is.
func (g *Gateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g.modelID == "" {
		return "", &domain.ConfigurationError{Key: "BEDROCK_MODEL_ID"}
	}

	body, err := json.Marshal(invokeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		Temperature:      temperature,
		Messages:         []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal invoke request: %w", err)
	}

	start := time.Now()
	out, err := g.runtime.InvokeModel(context.WithoutCancel(ctx), &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		ContentType: aws.String(contentType),
		Accept:      aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		perr := providerError(err)
		g.log.Error().Err(err).Str("code", perr.Code).Dur("elapsed", time.Since(start)).Msg("invoke model failed")
		return "", perr
	}
	g.log.Debug().Str("model", g.modelID).Dur("elapsed", time.Since(start)).Msg("invoke model")

	return extractText(out.Body)
}

// Ping lists the foundation models visible to the configured credentials.
func (g *Gateway) Ping(ctx context.Context) (int, error) {
	out, err := g.control.ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{})
	if err != nil {
		return 0, providerError(err)
	}
	return len(out.ModelSummaries), nil
}

func extractText(body []byte) (string, error) {
	var resp invokeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &domain.ResponseParseError{Reason: "invalid json", Err: err}
	}
	if len(resp.Content) == 0 {
		return "", &domain.ResponseParseError{Reason: "no content blocks"}
	}
	if resp.Content[0].Text == nil {
		return "", &domain.ResponseParseError{Reason: "first content block has no text"}
	}
	return *resp.Content[0].Text, nil
}

func providerError(err error) *domain.ProviderError {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &domain.ProviderError{Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage(), Err: err}
	}
	return &domain.ProviderError{Code: transportErrorCode, Message: err.Error(), Err: err}
}
