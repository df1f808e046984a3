// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/fantasy-points-service/internal/model"
	"github.com/maxviazov/fantasy-points-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// ScoringService defines the fantasy points use cases.
type ScoringService interface {
	// PreviewScore computes total and breakdown for an ad-hoc stat record
	// without persisting anything; this backs the points breakdown modal.
	PreviewScore(ctx context.Context, stat model.PlayerMatchStat) (model.ScoreBreakdown, error)
	// RecalculateMatch recomputes and persists fantasy points for every stat
	// row of one match.
	RecalculateMatch(ctx context.Context, matchID int64) (model.RecalculationResult, error)
	// RecalculateSport recomputes and persists fantasy points for every stat
	// row of a sport.
	RecalculateSport(ctx context.Context, sport string) (model.RecalculationResult, error)
	// ListRules pages through configured rule records for the admin screens.
	ListRules(ctx context.Context, sport string, page repository.Page) (repository.PageResult[model.ScoringRuleRecord], error)
}
