package gemini

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gitoon/gitoon/pkg/domain/interfaces"
	"github.com/gitoon/gitoon/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

const (
	DefaultTextModel  = "gemini-2.0-flash"
	DefaultImageModel = "gemini-2.0-flash-exp-image-generation"

	defaultCallTimeout = 2 * time.Minute
)

// Client calls the Gemini API for both the script text and the panel images.
type Client struct {
	gc          *genai.Client
	textModel   string
	imageModel  string
	callTimeout time.Duration
}

var (
	_ interfaces.TextModel  = (*Client)(nil)
	_ interfaces.ImageModel = (*Client)(nil)
)

type config struct {
	textModel   string
	imageModel  string
	callTimeout time.Duration
	baseURL     string
}

type Option func(*config)

func WithTextModel(model string) Option {
	return func(x *config) {
		x.textModel = model
	}
}

func WithImageModel(model string) Option {
	return func(x *config) {
		x.imageModel = model
	}
}

// WithCallTimeout bounds each generation call. Image generation regularly
// takes tens of seconds, so keep this generous.
func WithCallTimeout(d time.Duration) Option {
	return func(x *config) {
		x.callTimeout = d
	}
}

// WithBaseURL points the client at a different API endpoint, such as a
// test server.
func WithBaseURL(baseURL string) Option {
	return func(x *config) {
		x.baseURL = baseURL
	}
}

func New(ctx context.Context, apiKey types.GeminiAPIKey, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Gemini API key is empty")
	}

	cfg := &config{
		textModel:   DefaultTextModel,
		imageModel:  DefaultImageModel,
		callTimeout: defaultCallTimeout,
	}
	for _, opt := range options {
		opt(cfg)
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  string(apiKey),
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.baseURL,
		},
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client")
	}

	return &Client{
		gc:          gc,
		textModel:   cfg.textModel,
		imageModel:  cfg.imageModel,
		callTimeout: cfg.callTimeout,
	}, nil
}

// GenerateJSON asks the text model for a JSON document. The system prompt
// carries the persona and output contract, the user prompt carries the data.
func (x *Client) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, x.callTimeout)
	defer cancel()

	resp, err := x.gc.Models.GenerateContent(ctx, x.textModel, genai.Text(userPrompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return "", classifyError(err, x.textModel)
	}

	text := resp.Text()
	if text == "" {
		return "", goerr.Wrap(types.ErrTransient, "text generation returned no content",
			goerr.V("model", x.textModel),
		)
	}

	return text, nil
}

// GenerateImage asks the image model to draw one panel. The first inline
// data part of the response wins; a response without one is a failure.
func (x *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, x.callTimeout)
	defer cancel()

	resp, err := x.gc.Models.GenerateContent(ctx, x.imageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, classifyError(err, x.imageModel)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}

	return nil, goerr.Wrap(types.ErrTransient, "image generation returned no image part",
		goerr.V("model", x.imageModel),
	)
}

func classifyError(err error, modelName string) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError {
			return goerr.Wrap(types.ErrTransient, "Gemini API error",
				goerr.V("model", modelName),
				goerr.V("code", apiErr.Code),
				goerr.V("status", apiErr.Status),
			)
		}
		return goerr.Wrap(err, "Gemini API rejected the request", goerr.V("model", modelName))
	}

	// Timeouts and connection resets are worth another attempt.
	return goerr.Wrap(types.ErrTransient, "Gemini call failed",
		goerr.V("model", modelName),
		goerr.V("cause", err.Error()),
	)
}
