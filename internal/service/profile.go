package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"

	"github.com/lakshyaag/restaurant-recommender-mvp/internal/category"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/config"
	"github.com/lakshyaag/restaurant-recommender-mvp/internal/dto"
)

const modelSource = "language model"

const profileInstruction = `You are an AI assistant for a restaurant recommendation tool used by consulting firm partners to find restaurants for client meetings. Your task is to synthesize a search query for restaurants based on the input data provided by a partner. Ensure the query is specific, concise, and suitable for a business context in a major city. The query is sent to the Yelp Fusion business search API.

For clients in positions of seniority or for clients with a longer engagement period, consider a more upscale or expensive restaurant by increasing the price level.

Based on the purpose of the meeting, tune the search term so the ambiance is appropriate for the meeting. Keep the additional notes in mind when generating the search term.

The category filter is extremely exclusive, so select more categories than necessary to ensure the search is not too narrow. If the client profile already contains cuisine preferences, only add similar categories.

Respond with a single JSON object and nothing else, using exactly these keys:
  "location":   string, the location to search (e.g. "Toronto", "123 Main St")
  "term":       string, the search term
  "categories": array of category aliases; an empty array if nothing can be inferred
  "price":      string, comma-separated price levels from 1 to 4 (a higher number is more expensive), or null

Category aliases must be chosen from this list: %s`

// ChatModel is the subset of a langchaingo model used to translate profiles.
type ChatModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// NewOpenAIModel builds an OpenAI chat model.
func NewOpenAIModel(apiKey, model string) (ChatModel, error) {
	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("create openai client: %w", err)
	}
	return llm, nil
}

// ProfileService turns a client-meeting profile into restaurant search parameters.
type ProfileService struct {
	model      ChatModel
	categories *category.AllowList
	defaults   config.SearchDefaults
	logger     *zap.Logger
}

// NewProfileService wires the translator.
func NewProfileService(model ChatModel, categories *category.AllowList, defaults config.SearchDefaults, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{model: model, categories: categories, defaults: defaults, logger: logger}
}

type modelOutput struct {
	Location   string   `json:"location"`
	Term       string   `json:"term"`
	Categories []string `json:"categories"`
	Price      *string  `json:"price"`
}

// Translate asks the model for search parameters and validates its answer.
func (s *ProfileService) Translate(ctx context.Context, profile dto.ClientProfile) (dto.DerivedSearchParams, error) {
	if err := ValidateClientProfile(profile); err != nil {
		return dto.DerivedSearchParams{}, err
	}

	profileJSON, err := json.MarshalIndent(profile, "", "    ")
	if err != nil {
		return dto.DerivedSearchParams{}, fmt.Errorf("marshal client profile: %w", err)
	}

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, fmt.Sprintf(profileInstruction, strings.Join(s.categories.Aliases(), ", "))),
		llms.TextParts(schema.ChatMessageTypeHuman, string(profileJSON)),
	}

	resp, err := s.model.GenerateContent(ctx, messages, llms.WithJSONMode(), llms.WithTemperature(0))
	if err != nil {
		return dto.DerivedSearchParams{}, &UpstreamError{Source: modelSource, Message: "completion failed", Err: err}
	}
	if resp == nil || len(resp.Choices) == 0 {
		return dto.DerivedSearchParams{}, &SchemaError{Source: modelSource, Err: errors.New("no choices returned")}
	}

	var out modelOutput
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Choices[0].Content)), &out); err != nil {
		return dto.DerivedSearchParams{}, &SchemaError{Source: modelSource, Err: err}
	}

	return s.finalize(out, profile)
}

func (s *ProfileService) finalize(out modelOutput, profile dto.ClientProfile) (dto.DerivedSearchParams, error) {
	params := dto.DerivedSearchParams{
		Location:   firstNonEmpty(out.Location, profile.Location, s.defaults.Location),
		Term:       firstNonEmpty(out.Term, s.defaults.Term),
		Categories: []string{},
	}

	seen := make(map[string]struct{}, len(out.Categories))
	for _, alias := range out.Categories {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" {
			continue
		}
		if _, dup := seen[alias]; dup {
			continue
		}
		seen[alias] = struct{}{}
		if !s.categories.Contains(alias) {
			s.logger.Warn("dropping unknown category from model output", zap.String("alias", alias))
			continue
		}
		params.Categories = append(params.Categories, alias)
	}

	if out.Price != nil && strings.TrimSpace(*out.Price) != "" {
		price, ok := normalizePriceLevels(*out.Price)
		if !ok {
			return dto.DerivedSearchParams{}, &SchemaError{Source: modelSource, Err: fmt.Errorf("invalid price %q", *out.Price)}
		}
		if price != "" {
			params.Price = &price
		}
	}

	return params, nil
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
