package usecase

import (
	"errors"
	"fmt"

	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

// Sentinel errors for use case layer
var (
	// ErrValidation is raised before any store or provider call
	ErrValidation = model.ErrValidation

	// Auth errors
	ErrSignupFailed       = errors.New("signup failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("user profile not found")

	// Store write errors
	ErrInsertFailed = errors.New("failed to insert record")
	ErrUpdateFailed = errors.New("failed to update record")
	ErrDeleteFailed = errors.New("failed to delete record")

	// ErrNotFoundOrDenied covers both a missing row and a row owned by
	// another project manager
	ErrNotFoundOrDenied = errors.New("item not found or access denied")

	// ErrUpstream wraps any other failure of the store or the auth provider
	ErrUpstream = errors.New("upstream service error")
)

// Context keys for error values
const (
	ProjectManagerIDKey = "project_manager_id"
	ItemIDKey           = "item_id"
	EmailKey            = "email"
	ScenarioIDKey       = "risk_scenario_id"
	StatusKey           = "mitigation_status"
)

func upstream(err error) error {
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}
