package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/jobs"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

// components holds the wired pipeline dependencies. Close releases the LLM
// client connection.
type components struct {
	texts    *ingestion.Extractor
	profiles *parsing.Extractor
	searcher *jobs.Client
	client   llm.Client
}

func (c *components) Close() error {
	return c.client.Close()
}

// buildComponents assembles the pipeline from the effective configuration.
func buildComponents(ctx context.Context, cfg *config.Config) (*components, error) {
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	variant, err := llm.ParseVariant(cfg.SchemaVariant)
	if err != nil {
		return nil, err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &components{
		texts:    ingestion.NewExtractor(),
		profiles: parsing.NewExtractor(client, variant),
		searcher: jobs.NewClient(cfg.AdzunaAppID, cfg.AdzunaAppKey, &jobs.Options{Country: cfg.AdzunaCountry}),
		client:   client,
	}, nil
}

func buildOrchestrator(c *components, cfg *config.Config, onChange func(pipeline.State)) *pipeline.Orchestrator {
	return pipeline.New(c.texts, c.profiles, c.searcher, pipeline.Options{
		PageSize:       cfg.PageSize,
		SeedSkillCount: cfg.SeedSkills,
		OnChange:       onChange,
	})
}
