// Package gemini extracts structured career data from resume text with a
// Gemini model.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/muhammadolammi/resumeparser/internal/career"
	"github.com/muhammadolammi/resumeparser/internal/fallback"
	"github.com/muhammadolammi/resumeparser/internal/logger"
)

var (
	ErrEmptyText         = errors.New("no resume text to extract from")
	ErrMissingAPIKey     = errors.New("gemini api key not configured")
	ErrNoModel           = errors.New("no gemini model could be constructed")
	ErrGeneration        = errors.New("gemini generation failed")
	ErrMalformedResponse = errors.New("gemini response is not a JSON object")
)

// DefaultModels is the construction order: fast, then higher quality, then
// the legacy generic name.
var DefaultModels = []string{"gemini-2.5-flash", "gemini-2.5-pro", "gemini-pro"}

// excerptLen bounds how much of a bad response is logged.
const excerptLen = 500

type Client struct {
	apiKey   string
	models   []string
	newModel ModelFactory
}

type Option func(*Client)

// WithModels replaces the model fallback order. Empty names are ignored.
func WithModels(names ...string) Option {
	return func(c *Client) {
		var models []string
		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				models = append(models, n)
			}
		}
		if len(models) > 0 {
			c.models = models
		}
	}
}

// WithModelFactory swaps the way models are constructed.
func WithModelFactory(f ModelFactory) Option {
	return func(c *Client) { c.newModel = f }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   strings.TrimSpace(apiKey),
		models:   DefaultModels,
		newModel: NewAgentModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExtractStructured sends text to Gemini and decodes the career data in the
// reply. Errors wrap one of the package sentinels.
func (c *Client) ExtractStructured(ctx context.Context, text string) (*career.Data, error) {
	if strings.TrimSpace(text) == "" {
		logger.Warn().Msg("empty text provided to gemini")
		return nil, ErrEmptyText
	}

	m, err := c.model(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("model", m.Name()).Msg("using gemini model")

	reply, err := generate(ctx, m, BuildPrompt(text))
	if err != nil {
		logger.Error().Err(err).Str("model", m.Name()).Msg("error calling gemini api")
		if isCredentialError(err) {
			c.logCredentialHelp()
		}
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	cleaned := CleanJSON(reply)
	data, err := decode(cleaned)
	if err != nil {
		logger.Error().Err(err).Str("response", excerpt(cleaned, excerptLen)).Msg("failed to parse JSON from gemini response")
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	logger.Info().Msg("successfully parsed resume with gemini")
	return data, nil
}

// CheckAPIKey makes one trivial request to confirm the key is accepted.
func (c *Client) CheckAPIKey(ctx context.Context) error {
	m, err := c.model(ctx)
	if err != nil {
		return err
	}

	reply, err := generate(ctx, m, "Say 'API key is valid' if you can read this.")
	if err != nil {
		logger.Error().Err(err).Msg("api key test failed")
		if isCredentialError(err) {
			c.logCredentialHelp()
		}
		return fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	logger.Info().Str("reply", strings.TrimSpace(reply)).Msg("api key test successful")
	return nil
}

// model constructs the first model in the fallback order that can be built.
func (c *Client) model(ctx context.Context) (Model, error) {
	if c.apiKey == "" {
		logger.Error().Msg("GEMINI_KEY or GEMINI_API_KEY not found in environment variables")
		return nil, ErrMissingAPIKey
	}
	if !strings.HasPrefix(c.apiKey, "AIza") {
		logger.Warn().Str("key", maskKey(c.apiKey)).Msg("api key format looks unusual (doesn't start with 'AIza')")
	}

	strategies := make([]fallback.Strategy[Model], 0, len(c.models))
	for _, name := range c.models {
		strategies = append(strategies, fallback.Strategy[Model]{
			Name: name,
			Run: func(ctx context.Context) (Model, error) {
				m, err := c.newModel(ctx, c.apiKey, name)
				if err != nil {
					logger.Warn().Err(err).Str("model", name).Msg("failed to use model, trying next")
				}
				return m, err
			},
		})
	}

	m, _, err := fallback.First(ctx, strategies...)
	if err != nil {
		logger.Error().Err(err).Msg("no gemini model available")
		return nil, fmt.Errorf("%w: %w", ErrNoModel, err)
	}
	return m, nil
}

// generate calls m and turns a panic inside the model into an error.
func generate(ctx context.Context, m Model, prompt string) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			reply, err = "", fmt.Errorf("panic: %v", r)
		}
	}()
	return m.Generate(ctx, prompt)
}

func decode(cleaned string) (*career.Data, error) {
	if !strings.HasPrefix(cleaned, "{") {
		return nil, errors.New("expected a JSON object")
	}
	var data career.Data
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, err
	}
	return &data, nil
}
