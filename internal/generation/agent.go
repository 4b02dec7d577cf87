package generation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// healthPrompt is the minimal completion used for liveness checks.
const healthPrompt = `Reply with the single word "ok".`

type agentProvider struct {
	cfg    gaconfig.AgentConfig
	logger *slog.Logger
}

// New creates a Provider backed by a go-agents chat agent. Each call
// constructs its own agent, so concurrent runs never share client state.
func New(cfg gaconfig.AgentConfig, logger *slog.Logger) Provider {
	return &agentProvider{
		cfg:    cfg,
		logger: logger.With("system", "generation"),
	}
}

func (p *agentProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if err := p.checkConfig(); err != nil {
		return "", err
	}

	a, err := agent.New(&p.cfg)
	if err != nil {
		return "", classify(err)
	}

	resp, err := a.Chat(ctx, systemInstruction+"\n\n"+prompt)
	if err != nil {
		return "", classify(err)
	}

	text := strings.TrimSpace(resp.Content())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

func (p *agentProvider) HealthCheck(ctx context.Context) bool {
	if err := p.checkConfig(); err != nil {
		p.logger.Error("health check failed", "error", err)
		return false
	}

	a, err := agent.New(&p.cfg)
	if err != nil {
		p.logger.Error("health check failed", "error", err)
		return false
	}

	resp, err := a.Chat(ctx, healthPrompt)
	if err != nil {
		p.logger.Error("health check failed", "error", err)
		return false
	}

	return strings.TrimSpace(resp.Content()) != ""
}

func (p *agentProvider) checkConfig() error {
	if p.cfg.Provider == nil || p.cfg.Provider.Name == "" {
		return ErrMissingConfig
	}
	if p.cfg.Model == nil || p.cfg.Model.Name == "" {
		return ErrMissingConfig
	}
	return nil
}
