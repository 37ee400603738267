package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"project-hub/internal/analysis"
	"project-hub/internal/model"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// generator 為 *genai.GenerativeModel 中使用到的方法，測試時可替換
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type GeminiClient struct {
	client   *genai.Client
	model    string
	newModel func() generator
	logger   *slog.Logger
}

// 測試時可覆寫
var genaiNewClient = genai.NewClient

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genaiNewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	c := &GeminiClient{
		client: client,
		model:  modelName,
		logger: slog.Default().With("component", "gemini"),
	}
	c.newModel = func() generator {
		m := client.GenerativeModel(modelName)
		m.ResponseMIMEType = "application/json"
		return m
	}
	return c, nil
}

func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *GeminiClient) SuggestTasks(ctx context.Context, title, description string) ([]Suggestion, error) {
	text, err := c.generate(ctx, buildSuggestPrompt(title, description))
	if err != nil {
		return nil, err
	}
	return parseSuggestions(text)
}

func (c *GeminiClient) Analyze(ctx context.Context, title string, tasks []model.Task) (analysis.Analysis, error) {
	prompt, err := buildAnalyzePrompt(title, tasks)
	if err != nil {
		return analysis.Analysis{}, err
	}
	text, err := c.generate(ctx, prompt)
	if err != nil {
		return analysis.Analysis{}, err
	}
	return parseAnalysis(text)
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.newModel().GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	c.logger.DebugContext(ctx, "gemini response", "model", c.model, "length", len(text))
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type: %T", resp.Candidates[0].Content.Parts[0])
	}
	return string(text), nil
}
