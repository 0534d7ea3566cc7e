package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fitcoach/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
)

type mockInvoker struct {
	invokeFn func(ctx context.Context, in *bedrockruntime.InvokeModelInput) (*bedrockruntime.InvokeModelOutput, error)
}

func (m *mockInvoker) InvokeModel(ctx context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	return m.invokeFn(ctx, in)
}

type mockLister struct {
	listFn func(ctx context.Context) (*bedrock.ListFoundationModelsOutput, error)
}

func (m *mockLister) ListFoundationModels(ctx context.Context, _ *bedrock.ListFoundationModelsInput, _ ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error) {
	return m.listFn(ctx)
}

func newTestGateway(modelID string, inv modelInvoker, lst modelLister) *Gateway {
	return &Gateway{runtime: inv, control: lst, region: "us-east-1", modelID: modelID, log: zerolog.Nop()}
}

func replyWith(body string) *mockInvoker {
	return &mockInvoker{invokeFn: func(context.Context, *bedrockruntime.InvokeModelInput) (*bedrockruntime.InvokeModelOutput, error) {
		return &bedrockruntime.InvokeModelOutput{Body: []byte(body)}, nil
	}}
}

func TestGenerate_RequestShape(t *testing.T) {
	var got invokeRequest
	var gotModel string
	inv := &mockInvoker{invokeFn: func(_ context.Context, in *bedrockruntime.InvokeModelInput) (*bedrockruntime.InvokeModelOutput, error) {
		gotModel = aws.ToString(in.ModelId)
		if err := json.Unmarshal(in.Body, &got); err != nil {
			t.Fatalf("request body: %v", err)
		}
		return &bedrockruntime.InvokeModelOutput{Body: []byte(`{"content":[{"type":"text","text":"plan text"}]}`)}, nil
	}}
	g := newTestGateway("anthropic.claude-v2", inv, nil)

	text, err := g.Generate(context.Background(), "make me a plan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "plan text" {
		t.Fatalf("text = %q", text)
	}
	if gotModel != "anthropic.claude-v2" {
		t.Errorf("model = %q", gotModel)
	}
	if got.AnthropicVersion != "bedrock-2023-05-31" || got.MaxTokens != 1024 || got.Temperature != 0.7 {
		t.Errorf("unexpected request params: %+v", got)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || got.Messages[0].Content != "make me a plan" {
		t.Errorf("unexpected messages: %+v", got.Messages)
	}
}

func TestGenerate_MissingModel(t *testing.T) {
	called := false
	inv := &mockInvoker{invokeFn: func(context.Context, *bedrockruntime.InvokeModelInput) (*bedrockruntime.InvokeModelOutput, error) {
		called = true
		return nil, nil
	}}
	g := newTestGateway("", inv, nil)

	_, err := g.Generate(context.Background(), "hi")
	var ce *domain.ConfigurationError
	if !errors.As(err, &ce) || ce.Key != "BEDROCK_MODEL_ID" {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if called {
		t.Fatal("provider must not be called without a model id")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"api error", &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "no access"}, "AccessDeniedException"},
		{"transport", errors.New("dial tcp: connection refused"), transportErrorCode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := &mockInvoker{invokeFn: func(context.Context, *bedrockruntime.InvokeModelInput) (*bedrockruntime.InvokeModelOutput, error) {
				return nil, tc.err
			}}
			_, err := newTestGateway("m", inv, nil).Generate(context.Background(), "hi")
			var pe *domain.ProviderError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ProviderError, got %v", err)
			}
			if pe.Code != tc.wantCode {
				t.Errorf("code = %q; want %q", pe.Code, tc.wantCode)
			}
		})
	}
}

func TestGenerate_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>`},
		{"no content", `{"content":[]}`},
		{"no text", `{"content":[{"type":"tool_use"}]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newTestGateway("m", replyWith(tc.body), nil).Generate(context.Background(), "hi")
			var re *domain.ResponseParseError
			if !errors.As(err, &re) {
				t.Fatalf("expected ResponseParseError, got %v", err)
			}
		})
	}
}

func TestGenerate_IgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	inv := &mockInvoker{invokeFn: func(ctx context.Context, _ *bedrockruntime.InvokeModelInput) (*bedrockruntime.InvokeModelOutput, error) {
		if ctx.Err() != nil {
			t.Errorf("provider call saw cancelled context")
		}
		return &bedrockruntime.InvokeModelOutput{Body: []byte(`{"content":[{"text":"ok"}]}`)}, nil
	}}
	if _, err := newTestGateway("m", inv, nil).Generate(ctx, "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing(t *testing.T) {
	ok := &mockLister{listFn: func(context.Context) (*bedrock.ListFoundationModelsOutput, error) {
		return &bedrock.ListFoundationModelsOutput{ModelSummaries: []types.FoundationModelSummary{{}, {}}}, nil
	}}
	n, err := newTestGateway("m", nil, ok).Ping(context.Background())
	if err != nil || n != 2 {
		t.Fatalf("Ping = %d, %v", n, err)
	}

	denied := &mockLister{listFn: func(context.Context) (*bedrock.ListFoundationModelsOutput, error) {
		return nil, &smithy.GenericAPIError{Code: "UnrecognizedClientException", Message: "bad token"}
	}}
	_, err = newTestGateway("m", nil, denied).Ping(context.Background())
	var pe *domain.ProviderError
	if !errors.As(err, &pe) || pe.Code != "UnrecognizedClientException" {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestNew_MissingRegion(t *testing.T) {
	_, err := New(context.Background(), Config{ModelID: "m"}, zerolog.Nop())
	var ce *domain.ConfigurationError
	if !errors.As(err, &ce) || ce.Key != "AWS_REGION" {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
