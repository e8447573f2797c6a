// Package coach wraps the generative-AI collaborator. Prompts go in, text or
// JSON comes out; the model itself is an opaque service.
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"

	"github.com/jobtrail/jobtrail/internal/config"
)

// Model inputs above this size get truncated; job descriptions scraped from
// postings can be enormous.
const maxPromptInput = 20000

type Service struct {
	client llms.Model
	logger *zap.Logger
}

func NewService(ctx context.Context, cfg config.CoachConfig, logger *zap.Logger) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("coach: missing API key")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("coach: create client: %w", err)
	}

	return &Service{
		client: llm,
		logger: logger.With(zap.String("component", "coach")),
	}, nil
}

const keywordPrompt = `
You are an expert recruiter. Extract the skills and technologies a candidate
must echo in their application for the job posting below.

### INSTRUCTIONS:
1. Ignore boilerplate, benefits, and legal text.
2. Format the output as valid JSON only. Do not wrap it in markdown code blocks.

### OUTPUT SCHEMA:
{"keywords": ["Array", "of", "keywords", "e.g. Go, Kubernetes, gRPC"]}

### CONSTRAINT:
If the posting names no concrete skills, return {"keywords": []}. Do not guess.

### JOB POSTING:
%s
`

// ExtractKeywords pulls the must-mention keywords out of a job description.
func (s *Service) ExtractKeywords(ctx context.Context, jobDescription string) ([]string, error) {
	prompt := fmt.Sprintf(keywordPrompt, truncate(jobDescription))
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
	if err != nil {
		return nil, fmt.Errorf("coach: keyword extraction: %w", err)
	}

	var parsed struct {
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(cleanJSON(resp)), &parsed); err != nil {
		return nil, fmt.Errorf("coach: parse keywords: %w (raw: %.120s)", err, resp)
	}

	s.logger.Debug("keywords extracted", zap.Int("count", len(parsed.Keywords)))
	return parsed.Keywords, nil
}

const guidancePrompt = `
You are a career coach reviewing a resume against a specific job posting.
Give concrete, prioritized guidance: what to reorder, what to cut, which of
the candidate's experiences to emphasize for this posting. Be specific and
direct; plain text, no markdown headings.

### RESUME:
%s

### JOB POSTING:
%s
`

// ResumeGuidance returns free-form tailoring advice for a resume against a
// job description.
func (s *Service) ResumeGuidance(ctx context.Context, resume, jobDescription string) (string, error) {
	prompt := fmt.Sprintf(guidancePrompt, truncate(resume), truncate(jobDescription))
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
	if err != nil {
		return "", fmt.Errorf("coach: resume guidance: %w", err)
	}
	return strings.TrimSpace(resp), nil
}

const quantifyPrompt = `
You are a resume editor. The candidate wrote this experience bullet:

%s

Rewrite it in three variants that quantify impact (numbers, percentages,
scale). Where the bullet gives no figures, mark the spot the candidate must
fill with <N>.

### OUTPUT SCHEMA:
{"suggestions": ["variant 1", "variant 2", "variant 3"]}

Format the output as valid JSON only. Do not wrap it in markdown code blocks.
`

// QuantifyImpact suggests measurable rewrites of a single resume bullet.
func (s *Service) QuantifyImpact(ctx context.Context, bullet string) ([]string, error) {
	prompt := fmt.Sprintf(quantifyPrompt, truncate(bullet))
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
	if err != nil {
		return nil, fmt.Errorf("coach: quantify impact: %w", err)
	}

	var parsed struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(cleanJSON(resp)), &parsed); err != nil {
		return nil, fmt.Errorf("coach: parse suggestions: %w (raw: %.120s)", err, resp)
	}
	return parsed.Suggestions, nil
}

const expandPrompt = `
You are a career coach. Expand this one-line role description into a short
paragraph a candidate could use to describe the position in an interview.
Keep it factual to what is given; do not invent responsibilities.

### ROLE TITLE:
%s

### NOTES:
%s
`

// ExpandRole turns a terse role title plus notes into interview-ready prose.
func (s *Service) ExpandRole(ctx context.Context, title, notes string) (string, error) {
	prompt := fmt.Sprintf(expandPrompt, title, truncate(notes))
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
	if err != nil {
		return "", fmt.Errorf("coach: expand role: %w", err)
	}
	return strings.TrimSpace(resp), nil
}

func truncate(s string) string {
	if len(s) > maxPromptInput {
		return s[:maxPromptInput]
	}
	return s
}

// cleanJSON strips the markdown code fences models add despite instructions,
// and any prose around the outermost JSON value.
func cleanJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return s
	}
	end := strings.LastIndexAny(s, "}]")
	if end < start {
		return s
	}
	return s[start : end+1]
}
