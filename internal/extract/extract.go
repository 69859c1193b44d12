// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls structured trip entities out of free-text travel
// requests. A rule pipeline of ordered pattern matches always works
// offline; an optional AI backend produces richer results and falls back
// to the rules on any failure.
package extract

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tobrien/trip-engine/pkg/types"
)

// AIBackend abstracts the Generative AI API so tests can supply a mock.
// Each implementation handles a single message and returns the structured
// response.
type AIBackend interface {
	Extract(ctx context.Context, message string) (AIResponse, error)
}

// AIResponse is the structured response from the AI backend for one message.
// Empty or zero fields mean the model found nothing for that entity.
type AIResponse struct {
	Origin       string   `json:"origin"`
	Destination  string   `json:"destination"`
	StartDate    string   `json:"start_date"`
	DurationDays int      `json:"duration_days"`
	Adults       int      `json:"adults"`
	Children     int      `json:"children"`
	BudgetAmount float64  `json:"budget_amount"`
	BudgetTier   string   `json:"budget_tier"`
	TripType     string   `json:"trip_type"`
	Interests    []string `json:"interests"`
}

// validTiers is the set of accepted budget_tier values from the AI backend.
var validTiers = map[types.BudgetTier]bool{
	types.TierBudget:   true,
	types.TierModerate: true,
	types.TierLuxury:   true,
}

// Extractor runs trip-entity extraction, optionally through an AI backend.
type Extractor struct {
	backend AIBackend
	cfg     types.ExtractionConfig

	// now is overridable so date resolution is deterministic in tests.
	now func() time.Time
}

// NewExtractor builds an Extractor. A nil backend means rules-only
// extraction.
func NewExtractor(cfg types.ExtractionConfig, backend AIBackend) *Extractor {
	return &Extractor{
		backend: backend,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Extract parses one travel request into a TripQuery. With a backend
// configured it calls the AI first and falls back to the rule pipeline on
// any error or validation failure, so extraction only fails when the
// context is cancelled.
func (e *Extractor) Extract(ctx context.Context, message string) (*types.TripQuery, error) {
	if e.backend != nil {
		maxRetries := e.cfg.MaxRetries
		if maxRetries <= 0 {
			maxRetries = 3
		}

		resp, err := callWithRetry(ctx, e.backend, message, maxRetries)
		if err == nil {
			if q, validationErrors := convertResponse(resp); len(validationErrors) == 0 {
				return q, nil
			}
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return Rules(message, e.now()), nil
}

// Rules runs the pure rule pipeline against the message, resolving
// relative dates against now. It always succeeds; entities the message
// does not mention stay at their zero values.
func Rules(message string, now time.Time) *types.TripQuery {
	route := ExtractRoute(message)
	party := ExtractParty(message)

	q := &types.TripQuery{
		Origin:       route.Origin,
		Destination:  route.Destination,
		DurationDays: ExtractDurationDays(message),
		Adults:       party.Adults,
		Children:     party.Children,
		TripType:     ExtractTripType(message),
		Interests:    ExtractInterests(message),
		Source:       "rules",
	}

	if amount, ok := ExtractBudgetAmount(message); ok {
		q.BudgetAmount = amount
	}
	if tier, ok := ExtractBudgetTier(message); ok {
		q.BudgetTier = tier
	}
	if start, ok := ExtractStartDate(message, now); ok {
		q.StartDate = start.Format(ISODate)
	}

	return q
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// callWithRetry calls the AI backend with exponential backoff.
func callWithRetry(ctx context.Context, backend AIBackend, message string, maxRetries int) (AIResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return AIResponse{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := backend.Extract(ctx, message)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return AIResponse{}, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}

// convertResponse validates an AI response and converts it to a TripQuery.
// Out-of-range counts, malformed dates, and unknown tiers are collected as
// validation errors so the caller can fall back to the rules.
func convertResponse(resp AIResponse) (*types.TripQuery, []string) {
	var errors []string

	if resp.Adults < 0 || resp.Adults > 10 {
		errors = append(errors, fmt.Sprintf("adults %d out of range [0,10]", resp.Adults))
	}
	if resp.Children < 0 || resp.Children > 10 {
		errors = append(errors, fmt.Sprintf("children %d out of range [0,10]", resp.Children))
	}
	if resp.DurationDays < 0 || resp.DurationDays > 30 {
		errors = append(errors, fmt.Sprintf("duration %d out of range [0,30]", resp.DurationDays))
	}
	if resp.BudgetAmount < 0 {
		errors = append(errors, fmt.Sprintf("budget amount %f negative", resp.BudgetAmount))
	}

	tier := types.BudgetTier(resp.BudgetTier)
	if resp.BudgetTier != "" && !validTiers[tier] {
		errors = append(errors, fmt.Sprintf("invalid budget tier %q", resp.BudgetTier))
	}

	if resp.StartDate != "" {
		if _, err := time.Parse(ISODate, resp.StartDate); err != nil {
			errors = append(errors, fmt.Sprintf("invalid start date %q", resp.StartDate))
		}
	}

	if len(errors) > 0 {
		return nil, errors
	}

	q := &types.TripQuery{
		Origin:       strings.TrimSpace(resp.Origin),
		Destination:  strings.TrimSpace(resp.Destination),
		StartDate:    resp.StartDate,
		DurationDays: resp.DurationDays,
		Adults:       resp.Adults,
		Children:     resp.Children,
		BudgetAmount: resp.BudgetAmount,
		BudgetTier:   tier,
		TripType:     resp.TripType,
		Interests:    resp.Interests,
		Source:       "ai",
	}
	return q, nil
}
