package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedReplies(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Text: "first reply"},
		MockReply{Text: "second reply"},
	)

	got, err := mock.GenerateText(context.Background(), GenerateRequest{Prompt: "one"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first reply" {
		t.Fatalf("expected 'first reply', got %q", got)
	}

	got, err = mock.GenerateText(context.Background(), GenerateRequest{Prompt: "two"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "second reply" {
		t.Fatalf("expected 'second reply', got %q", got)
	}
}

func TestMockProvider_EmptyQueueReturnsPlaceholder(t *testing.T) {
	mock := NewMockProvider()
	got, err := mock.GenerateText(context.Background(), GenerateRequest{Prompt: "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultMockText {
		t.Fatalf("expected placeholder text, got %q", got)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockReply{Text: "ok"})

	_, _ = mock.GenerateText(context.Background(), GenerateRequest{Prompt: "hello", MaxTokens: 50})

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Prompt != "hello" {
		t.Errorf("expected recorded prompt 'hello', got %q", mock.Calls[0].Prompt)
	}
}

func TestMockProvider_CannedError(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: &ErrGeneration{Provider: "mock", Err: errors.New("boom")}})

	_, err := mock.GenerateText(context.Background(), GenerateRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	var gen *ErrGeneration
	if !errors.As(err, &gen) {
		t.Fatalf("expected ErrGeneration, got %T", err)
	}
}

func TestMockProvider_ClassifyEqualDistribution(t *testing.T) {
	mock := NewMockProvider()

	scores, err := mock.Classify(context.Background(), "content", []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range []string{"a", "b", "c", "d"} {
		if scores[c] != 0.25 {
			t.Errorf("expected 0.25 for %q, got %v", c, scores[c])
		}
	}
}

func TestGenerateRequest_Defaults(t *testing.T) {
	req := GenerateRequest{Prompt: "p"}.withDefaults()
	if req.MaxTokens != DefaultMaxTokens {
		t.Errorf("expected default max tokens %d, got %d", DefaultMaxTokens, req.MaxTokens)
	}
	if req.Temperature != DefaultTemperature {
		t.Errorf("expected default temperature %v, got %v", DefaultTemperature, req.Temperature)
	}

	req = GenerateRequest{Prompt: "p", MaxTokens: 300, Temperature: 0.2}.withDefaults()
	if req.MaxTokens != 300 || req.Temperature != 0.2 {
		t.Errorf("explicit values should be preserved, got %+v", req)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", APIKey: "sk-test"}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"unknown tag", Config{Provider: "cohere2000"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateMissingKeyIsBackendUnavailable(t *testing.T) {
	err := Config{Provider: "openai"}.Validate()
	var unavail *ErrBackendUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrBackendUnavailable, got %T", err)
	}
	if unavail.Provider != "openai" {
		t.Errorf("expected provider 'openai', got %q", unavail.Provider)
	}
}

func TestNewProvider_UnknownTag(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "does-not-exist"}, nil)
	var unknown *ErrUnknownProvider
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
	if unknown.Provider != "does-not-exist" {
		t.Errorf("expected tag in error, got %q", unknown.Provider)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("expected model 'mock', got %q", p.ModelID())
	}
}

func TestNewProvider_MissingCredential(t *testing.T) {
	for _, provider := range []string{"anthropic", "openai", "openrouter"} {
		_, err := NewProvider(context.Background(), Config{Provider: provider}, nil)
		var unavail *ErrBackendUnavailable
		if !errors.As(err, &unavail) {
			t.Errorf("%s: expected ErrBackendUnavailable, got %v", provider, err)
		}
	}
}

func TestDescribe(t *testing.T) {
	info := Describe(Config{Provider: "mock"}, NewMockProvider())
	if !info.Mock {
		t.Error("expected Mock=true for mock provider")
	}
	if info.Model != "mock" {
		t.Errorf("expected model 'mock', got %q", info.Model)
	}
}

func TestResolveModel(t *testing.T) {
	models := map[string]string{"friendly": "provider-id-123"}

	if got := resolveModel("friendly", models, "friendly"); got != "provider-id-123" {
		t.Errorf("expected mapped ID, got %q", got)
	}
	if got := resolveModel("raw-model-id", models, "friendly"); got != "raw-model-id" {
		t.Errorf("expected passthrough, got %q", got)
	}
	if got := resolveModel("", models, "friendly"); got != "provider-id-123" {
		t.Errorf("expected default resolution, got %q", got)
	}
}
