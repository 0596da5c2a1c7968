package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pulse/internal/domain/stats"
)

// HTTPGenerator talks to an OpenAI-compatible chat completions endpoint
// and asks for strict-JSON answers matching the narrative structures.
type HTTPGenerator struct {
	url    string
	apiKey string
	model  string
	client *http.Client
}

func NewHTTPGenerator(url, apiKey, model string, timeout time.Duration) *HTTPGenerator {
	return &HTTPGenerator{
		url:    url,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

const systemPrompt = "You are an expert survey analyst specializing in employee engagement and satisfaction. " +
	"Answer in Polish. Respond with valid JSON only, matching the requested structure exactly."

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat respFormat    `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *HTTPGenerator) Insights(ctx context.Context, result stats.Result) (Insights, error) {
	prompt := fmt.Sprintf(
		"Na podstawie statystyk badania napisz po jednym zdaniu komentarza do najniżej i najwyżej ocenionych obszarów. "+
			"Zwróć JSON {\"lowest_insight\": string, \"highest_insight\": string}.\n\nStatystyki:\n%s",
		mustJSON(result))

	var insights Insights
	if err := g.complete(ctx, prompt, &insights); err != nil {
		return Insights{}, err
	}
	return insights, nil
}

func (g *HTTPGenerator) LeaderAdditions(ctx context.Context, department string, result stats.Result) (LeaderAdditions, error) {
	prompt := fmt.Sprintf(
		"Dla działu %q zaproponuj listy STOP (czego zaprzestać) i WELCOME (co wdrożyć na powitanie nowych osób) "+
			"na podstawie statystyk badania. Zwróć JSON {\"stop\": [string], \"welcome\": [string]}.\n\nStatystyki:\n%s",
		department, mustJSON(result))

	additions := LeaderAdditions{Stop: []string{}, Welcome: []string{}}
	if err := g.complete(ctx, prompt, &additions); err != nil {
		return LeaderAdditions{}, err
	}
	return additions, nil
}

func (g *HTTPGenerator) complete(ctx context.Context, prompt string, out any) error {
	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.3,
		ResponseFormat: respFormat{Type: "json_object"},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("narrative backend returned %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return fmt.Errorf("decode narrative response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return fmt.Errorf("narrative backend returned no choices")
	}
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("parse narrative content: %w", err)
	}
	return nil
}

func mustJSON(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(payload)
}
