// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package revise

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/pdiddy/policy-auditor/pkg/types"
)

const (
	defaultOllamaHost = "http://localhost:11434"
	defaultModel      = "llama3.2:3b"

	// generateTemperature keeps revisions close to the source material.
	generateTemperature = 0.3
)

// OllamaGenerator produces policy additions through a local Ollama daemon.
// It is optional and treated as unreliable: callers probe Available before
// enabling it and fall back to the template renderer on any error.
type OllamaGenerator struct {
	client *api.Client
	model  string
}

// NewOllamaGenerator builds a generator against the configured host and
// model, defaulting to the local daemon and llama3.2:3b.
func NewOllamaGenerator(cfg types.AIConfig) (*OllamaGenerator, error) {
	host := cfg.Host
	if host == "" {
		host = defaultOllamaHost
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid generator host %q: %w", host, err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &OllamaGenerator{
		client: api.NewClient(u, http.DefaultClient),
		model:  model,
	}, nil
}

// Name identifies the generator for status output.
func (g *OllamaGenerator) Name() string {
	return "ollama/" + g.model
}

// Available reports whether the daemon responds and has the configured
// model pulled. A nil return means the generation path can be attempted.
func (g *OllamaGenerator) Available(ctx context.Context) error {
	if err := g.client.Heartbeat(ctx); err != nil {
		return &CollaboratorError{Generator: g.Name(), Err: fmt.Errorf("daemon not reachable: %w", err)}
	}

	list, err := g.client.List(ctx)
	if err != nil {
		return &CollaboratorError{Generator: g.Name(), Err: fmt.Errorf("listing models: %w", err)}
	}
	for _, m := range list.Models {
		if m.Name == g.model || strings.TrimSuffix(m.Name, ":latest") == g.model {
			return nil
		}
	}
	return &CollaboratorError{
		Generator: g.Name(),
		Err:       fmt.Errorf("model %s not pulled (run: ollama pull %s)", g.model, g.model),
	}
}

// Generate renders policy additions for the gaps. The request is
// non-streaming; the caller's context bounds the call.
func (g *OllamaGenerator) Generate(ctx context.Context, excerpt string, gaps []types.Gap) (string, error) {
	prompt := buildPrompt(excerpt, formatGapsForPrompt(gaps, 0))

	stream := false
	req := &api.GenerateRequest{
		Model:  g.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": generateTemperature,
		},
	}

	var out strings.Builder
	err := g.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		out.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", &CollaboratorError{Generator: g.Name(), Err: err}
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", &CollaboratorError{Generator: g.Name(), Err: fmt.Errorf("empty response")}
	}
	return text, nil
}
