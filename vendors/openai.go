package vendors

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/moko271/design-thinking-grarec/config"
	"github.com/moko271/design-thinking-grarec/log"
)

// OpenAIClient wraps the OpenAI client
type OpenAIClient struct {
	client       *openai.Client
	model        string
	whisperModel string
	language     string
}

// CompletionOptions holds options for completions
type CompletionOptions struct {
	SystemPrompt string
	Prompt       string
	MaxTokens    int
	Temperature  float32
	JSONMode     bool
}

// CompletionResponse represents a completion response
type CompletionResponse struct {
	Content      string
	FinishReason string
	Usage        struct {
		PromptTokens     int
		CompletionTokens int
		TotalTokens      int
	}
}

// NewOpenAI builds a client from configuration. Callers must ensure an API
// key is configured; main refuses to boot without one.
func NewOpenAI(cfg *config.Config) *OpenAIClient {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" && cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	log.Info().
		Str("model", cfg.OpenAIModel).
		Str("whisperModel", cfg.WhisperModel).
		Msg("OpenAI initialized")

	return &OpenAIClient{
		client:       openai.NewClientWithConfig(clientConfig),
		model:        cfg.OpenAIModel,
		whisperModel: cfg.WhisperModel,
		language:     cfg.TranscribeLanguage,
	}
}

// Complete performs a chat completion
func (o *OpenAIClient) Complete(ctx context.Context, opts CompletionOptions) (*CompletionResponse, error) {
	var messages []openai.ChatCompletionMessage

	if opts.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: opts.SystemPrompt,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: opts.Prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}

	if opts.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	log.Debug().
		Str("model", o.model).
		Int("promptChars", len(opts.Prompt)).
		Float32("temperature", opts.Temperature).
		Bool("jsonMode", opts.JSONMode).
		Msg("openai request")

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("completion failed")
		return nil, err
	}

	if len(resp.Choices) == 0 {
		log.Error().Interface("response", resp).Msg("openai response has no choices")
		return nil, errors.New("no choices in response")
	}

	content := resp.Choices[0].Message.Content
	finishReason := string(resp.Choices[0].FinishReason)

	log.Debug().
		Str("finishReason", finishReason).
		Int("contentChars", len(content)).
		Int("promptTokens", resp.Usage.PromptTokens).
		Int("completionTokens", resp.Usage.CompletionTokens).
		Int("totalTokens", resp.Usage.TotalTokens).
		Msg("openai response")

	return &CompletionResponse{
		Content:      content,
		FinishReason: finishReason,
		Usage: struct {
			PromptTokens     int
			CompletionTokens int
			TotalTokens      int
		}{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

// Transcribe runs Whisper speech to text over one uploaded audio stream and
// returns the trimmed transcript.
func (o *OpenAIClient) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	// Browser recorders often post a bare "blob" name; Whisper needs an
	// extension to recognize the container format.
	if filepath.Ext(filename) == "" {
		filename += ".webm"
	}

	log.Debug().
		Str("model", o.whisperModel).
		Str("filename", filename).
		Str("language", o.language).
		Msg("transcription request")

	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.whisperModel,
		Reader:   audio,
		FilePath: filename,
		Language: o.language,
	})
	if err != nil {
		log.Error().Err(err).Msg("transcription failed")
		return "", err
	}

	text := strings.TrimSpace(resp.Text)

	log.Debug().Int("textChars", len(text)).Msg("transcription response")

	return text, nil
}
