package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	adkgemini "google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/muhammadolammi/resumeparser/internal/logger"
)

const (
	agentName = "resume_extractor"
	agentUser = "resumeparser"
)

// Model is one constructed Gemini model that turns a prompt into text.
type Model interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ModelFactory constructs the model called name.
type ModelFactory func(ctx context.Context, apiKey, name string) (Model, error)

// agentModel runs a single-turn agent over a Gemini model. Each Generate call
// gets its own throw-away session.
type agentModel struct {
	name     string
	appName  string
	runner   *runner.Runner
	sessions session.Service
}

// NewAgentModel is the production ModelFactory.
func NewAgentModel(ctx context.Context, apiKey, name string) (Model, error) {
	llm, err := adkgemini.NewModel(ctx, name, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	extractor, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       llm,
		Description: "Extract structured career data from resumes",
		Instruction: instruction,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessions := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        extractor.Name(),
		Agent:          extractor,
		SessionService: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	return &agentModel{
		name:     name,
		appName:  extractor.Name(),
		runner:   r,
		sessions: sessions,
	}, nil
}

func (m *agentModel) Name() string { return m.name }

func (m *agentModel) Generate(ctx context.Context, prompt string) (string, error) {
	created, err := m.sessions.Create(ctx, &session.CreateRequest{
		AppName:   m.appName,
		UserID:    agentUser,
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	defer func() {
		err := m.sessions.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   created.Session.AppName(),
			UserID:    created.Session.UserID(),
			SessionID: created.Session.ID(),
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to delete agent session")
		}
	}()

	stream := m.runner.Run(ctx, created.Session.UserID(), created.Session.ID(), &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", err
		}
		if event == nil || !event.IsFinalResponse() || event.Content == nil {
			continue
		}
		var b strings.Builder
		for _, part := range event.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		output = b.String()
	}

	if output == "" {
		return "", errors.New("empty agent response")
	}
	return output, nil
}
