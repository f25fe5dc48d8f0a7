package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/moodboard-ai/api/internal/mood"
)

const (
	inferenceBaseURL   = "https://api-inference.huggingface.co/models"
	chatCompletionsURL = "https://router.huggingface.co/v1/chat/completions"
	userAgent          = "moodboard-api/1.0"
)

// Model identifiers used by the mood pipeline.
const (
	SentimentModel = "cardiffnlp/twitter-roberta-base-sentiment-latest"
	EmotionModel   = "j-hartmann/emotion-english-distilroberta-base"
	POSModel       = "vblagoje/bert-english-uncased-finetuned-pos"
	ChatModel      = "meta-llama/Meta-Llama-3-8B-Instruct"
)

// Client is a Hugging Face Inference API client. Classification calls use a
// short timeout so the mood analyzer can fall back quickly; chat completions
// get a longer one.
type Client struct {
	inferenceClient *http.Client
	chatClient      *http.Client
	inferenceURL    string
	chatURL         string
}

// NewClient creates a client authenticated with the configured API key via
// a static bearer token source.
func NewClient(cfg *Config) *Client {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey})

	inference := oauth2.NewClient(context.Background(), source)
	inference.Timeout = 10 * time.Second

	chat := oauth2.NewClient(context.Background(), source)
	chat.Timeout = 30 * time.Second

	return &Client{
		inferenceClient: inference,
		chatClient:      chat,
		inferenceURL:    inferenceBaseURL,
		chatURL:         chatCompletionsURL,
	}
}

// ClassifyText runs a text-classification model and returns its (label,
// score) pairs in the model's emission order.
func (c *Client) ClassifyText(ctx context.Context, model, text string) ([]mood.LabelScore, error) {
	body, err := c.post(ctx, c.inferenceClient, c.inferenceURL+"/"+model, inferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("classifying text: %w", err)
	}

	results, err := decodeLabelScores(body)
	if err != nil {
		return nil, fmt.Errorf("parsing classification response: %w", err)
	}

	scores := make([]mood.LabelScore, len(results))
	for i, r := range results {
		scores[i] = mood.LabelScore{Label: r.Label, Score: r.Score}
	}
	return scores, nil
}

// TagTokens runs a token-classification (POS) model and returns one tagged
// token per aggregated word, in text order.
func (c *Client) TagTokens(ctx context.Context, model, text string) ([]mood.Token, error) {
	body, err := c.post(ctx, c.inferenceClient, c.inferenceURL+"/"+model, inferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("tagging tokens: %w", err)
	}

	var tags []tokenTag
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, fmt.Errorf("parsing token classification response: %w", err)
	}

	tokens := make([]mood.Token, 0, len(tags))
	for _, t := range tags {
		pos := t.EntityGroup
		if pos == "" {
			pos = t.Entity
		}
		tokens = append(tokens, mood.Token{Text: t.Word, POS: pos})
	}
	return tokens, nil
}

// ChatCompletion sends a chat request to the router endpoint and returns the
// first choice's content.
func (c *Client) ChatCompletion(ctx context.Context, system, user string, maxTokens int, temperature, topP float64) (string, error) {
	req := chatRequest{
		Model: ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	body, err := c.post(ctx, c.chatClient, c.chatURL, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("parsing chat response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// post performs a JSON POST and returns the raw response body, surfacing
// API error bodies on non-success statuses.
func (c *Client) post(ctx context.Context, client *http.Client, url string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return body, nil
}

// decodeLabelScores handles both flat and nested classification responses;
// some models wrap the result list in an outer single-element array.
func decodeLabelScores(body []byte) ([]labelScore, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return nested[0], nil
	}

	var flat []labelScore
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}
