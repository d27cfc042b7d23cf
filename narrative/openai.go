package narrative

import (
	"context"
	"errors"
	"fmt"

	"github.com/redexp/pedigree/state"
	"github.com/sashabaranov/go-openai"
)

var ErrMissingKey = errors.New("language model api key is not configured")

type Config struct {
	APIKey              string  `mapstructure:"apiKey"`
	BaseURL             string  `mapstructure:"baseUrl" validate:"omitempty,url"`
	AnalysisModel       string  `mapstructure:"analysisModel"`
	AnalysisTemperature float32 `mapstructure:"analysisTemperature" validate:"gte=0,lte=2"`
	NoteModel           string  `mapstructure:"noteModel"`
	NoteTemperature     float32 `mapstructure:"noteTemperature" validate:"gte=0,lte=2"`
}

func DefaultConfig() Config {
	return Config{
		AnalysisModel:       openai.GPT4o,
		AnalysisTemperature: 0.7,
		NoteModel:           openai.GPT4oMini,
		NoteTemperature:     0.5,
	}
}

type OpenAI struct {
	client *openai.Client
	config Config
}

func NewOpenAI(config Config) (*OpenAI, error) {
	if config.APIKey == "" {
		return nil, ErrMissingKey
	}

	cfg := openai.DefaultConfig(config.APIKey)

	if config.BaseURL != "" {
		cfg.BaseURL = config.BaseURL
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		config: config,
	}, nil
}

func (o *OpenAI) Summarize(ctx context.Context, store *state.Store) (string, error) {
	prompt, err := AnalysisPrompt(store)

	if err != nil {
		return "", err
	}

	return o.complete(ctx, o.config.AnalysisModel, o.config.AnalysisTemperature, prompt)
}

func (o *OpenAI) DraftNote(ctx context.Context, store *state.Store) (string, error) {
	return o.complete(ctx, o.config.NoteModel, o.config.NoteTemperature, NotePrompt(store))
}

func (o *OpenAI) complete(ctx context.Context, model string, temperature float32, prompt string) (string, error) {
	log.Debugf("calling %s", model)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	})

	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
