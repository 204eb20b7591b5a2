// Package oracle implements impact.Engine on top of an OpenAI-compatible
// chat-completion service. Results are not deterministic.
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"asteroid-sim/internal/impact"
	"asteroid-sim/internal/logging"
)

// ErrExternalService wraps every failure of the remote path.
var ErrExternalService = errors.New("external analysis service error")

// ChatClient is the subset of *openai.Client the engine uses.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config configures the remote engine.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	Temperature float32
}

// Engine delegates analysis to a text-generation service.
type Engine struct {
	client      ChatClient
	model       string
	timeout     time.Duration
	temperature float32
	now         func() time.Time
}

// New builds an Engine backed by the go-openai client.
func New(cfg Config) (*Engine, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("remote engine: API key not set")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{}
	return NewWithClient(openai.NewClientWithConfig(clientCfg), cfg), nil
}

// NewWithClient builds an Engine around an existing client.
func NewWithClient(client ChatClient, cfg Config) *Engine {
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Engine{
		client:      client,
		model:       model,
		timeout:     timeout,
		temperature: cfg.Temperature,
		now:         time.Now,
	}
}

// Name implements impact.Engine.
func (e *Engine) Name() string { return "remote" }

// Analyze implements impact.Engine. Input validation matches the local
// engine; everything after the request is surfaced as ErrExternalService.
func (e *Engine) Analyze(ctx context.Context, in impact.AsteroidInput) (impact.AnalysisResult, error) {
	log := logging.FromContext(ctx).With("component", "oracle", "model", e.model)
	if err := impact.Validate(in, false); err != nil {
		return impact.AnalysisResult{}, fmt.Errorf("remote analysis: %w", err)
	}

	prompt, err := userPrompt(in)
	if err != nil {
		return impact.AnalysisResult{}, fmt.Errorf("remote analysis: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    e.temperature,
	}

	log.Debug("requesting remote analysis", "asteroid", in.Name)
	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Error("chat completion failed", "error", err)
		return impact.AnalysisResult{}, fmt.Errorf("%w: chat completion: %w", ErrExternalService, err)
	}
	if len(resp.Choices) == 0 {
		return impact.AnalysisResult{}, fmt.Errorf("%w: response has no choices", ErrExternalService)
	}

	res, err := DecodeResult(resp.Choices[0].Message.Content)
	if err != nil {
		log.Warn("remote response rejected", "error", err, "finish_reason", resp.Choices[0].FinishReason)
		return impact.AnalysisResult{}, err
	}
	res.Timestamp = e.now().UTC()
	log.Debug("remote analysis complete", "probability", res.ImpactProbability, "megatons", res.KineticEnergyMegatons)
	return res, nil
}

// userPrompt serialises the input fields the service needs.
func userPrompt(in impact.AsteroidInput) (string, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode input: %w", err)
	}
	return "Analyze this asteroid: " + string(b), nil
}
