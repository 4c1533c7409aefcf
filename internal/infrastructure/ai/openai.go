// Package ai implements the recipe and exercise generation ports against an
// OpenAI-compatible chat-completions endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spotterhq/spotter-api/internal/core/ports"
)

const requestTimeout = 30 * time.Second

// Client talks to an OpenAI-compatible API. It asks for one meal matching
// the user's preferences and expects a strict JSON reply.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// complete posts a system+user prompt pair and returns the first choice's
// message content.
func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    0.7,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("ai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("ai: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai: unexpected status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return "", fmt.Errorf("ai: decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("ai: empty response")
	}
	return chat.Choices[0].Message.Content, nil
}

func (c *Client) GenerateDayPlan(ctx context.Context, prefs ports.RecipePreferences) (*ports.RecipePlan, error) {
	content, err := c.complete(ctx, systemPrompt, buildPrompt(prefs))
	if err != nil {
		return nil, err
	}

	var plan ports.RecipePlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("ai: malformed plan: %w", err)
	}
	if len(plan.Meals) == 0 {
		return nil, fmt.Errorf("ai: plan contains no meals")
	}
	if plan.TotalCalories == 0 {
		for _, meal := range plan.Meals {
			plan.TotalCalories += meal.Calories
		}
	}
	return &plan, nil
}

const systemPrompt = `You are a nutrition assistant. Reply with a single JSON object of the form
{"meals":[{"name":"...","calories":0,"time_minutes":0,"ingredients":["..."],"steps":["..."]}],"total_calories":0}
containing exactly one meal. No prose outside the JSON.`

func buildPrompt(prefs ports.RecipePreferences) string {
	goal := map[string]string{
		"bulking":     "bulking (higher calories, high protein)",
		"cutting":     "cutting (calorie deficit, high protein)",
		"maintenance": "maintenance (moderate calories)",
	}[strings.ToLower(prefs.Goal)]
	if goal == "" {
		goal = "general fitness"
	}

	diet := strings.ToLower(strings.TrimSpace(prefs.Diet))
	if diet == "" || diet == "none" {
		diet = "no specific diet"
	}

	cookingTime := map[string]string{
		"quick":  "under 15 minutes",
		"medium": "15-30 minutes",
	}[strings.ToLower(prefs.CookingTime)]
	if cookingTime == "" {
		cookingTime = "up to 60 minutes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Suggest one meal for someone with a %s goal, following %s, cookable in %s.", goal, diet, cookingTime)
	if n, err := strconv.Atoi(strings.TrimSpace(prefs.CalorieTarget)); err == nil && n > 0 {
		fmt.Fprintf(&b, " Aim for roughly %d calories.", n)
	}
	if ingredients := strings.TrimSpace(prefs.Ingredients); ingredients != "" {
		fmt.Fprintf(&b, " Prefer these ingredients: %s.", ingredients)
	}
	if allergies := strings.TrimSpace(prefs.Allergies); allergies != "" {
		fmt.Fprintf(&b, " Strictly avoid: %s.", allergies)
	}
	return b.String()
}
