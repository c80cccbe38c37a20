package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/renovplan/renovation-planner/internal/catalog"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrProjectNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "project")
}

func NewErrLotNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "lot")
}

type ErrInvalidLot struct {
	error
}

func NewErrUnknownLotType(lotType catalog.LotType) *ErrInvalidLot {
	return &ErrInvalidLot{fmt.Errorf("unknown lot type %q", lotType)}
}

func NewErrInvalidLot(lotType catalog.LotType, message string) *ErrInvalidLot {
	return &ErrInvalidLot{fmt.Errorf("invalid lot %q: %s", lotType, message)}
}

type ErrDuplicateLot struct {
	error
}

func NewErrDuplicateLot(projectID uuid.UUID, lotType catalog.LotType) *ErrDuplicateLot {
	return &ErrDuplicateLot{fmt.Errorf("lot %q is already selected for project %s", lotType, projectID)}
}

type ErrMissingBudgetEnvelope struct {
	error
}

func NewErrMissingBudgetEnvelope(projectID uuid.UUID) *ErrMissingBudgetEnvelope {
	return &ErrMissingBudgetEnvelope{fmt.Errorf("project %s has no budget envelope", projectID)}
}

type ErrUnsupportedReportFormat struct {
	error
}

func NewErrUnsupportedReportFormat(format string) *ErrUnsupportedReportFormat {
	return &ErrUnsupportedReportFormat{fmt.Errorf("unsupported report format: %s", format)}
}

type ErrPublishingDisabled struct {
	error
}

func NewErrPublishingDisabled() *ErrPublishingDisabled {
	return &ErrPublishingDisabled{errors.New("report publishing is disabled: no object store is configured")}
}
