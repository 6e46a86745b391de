package services

import "github.com/appdotbuilder/finops-audit-app/internal/apperrors"

// FX rate errors
var (
	ErrFxRateNotFound      = apperrors.Define(apperrors.ErrNotFound, "fx rate not found")
	ErrFxRateLocked        = apperrors.Define(apperrors.ErrInvalidState, "fx rate is locked and cannot be changed")
	ErrFxRateAlreadyLocked = apperrors.Define(apperrors.ErrInvalidState, "fx rate is already locked")
	ErrNoRateAvailable     = apperrors.Define(apperrors.ErrNotFound, "no fx rate available")
	ErrNoFxRate            = apperrors.Define(apperrors.ErrPrecondition, "no fx rate available for date")
)

// Period errors
var (
	ErrPeriodNotFound      = apperrors.Define(apperrors.ErrNotFound, "period not found")
	ErrDuplicatePeriod     = apperrors.Define(apperrors.ErrDuplicate, "period already exists")
	ErrNoOpenPeriod        = apperrors.Define(apperrors.ErrNotFound, "no open period")
	ErrPeriodLocked        = apperrors.Define(apperrors.ErrInvalidState, "period is locked")
	ErrPeriodAlreadyLocked = apperrors.Define(apperrors.ErrInvalidState, "period is already locked")
	ErrCannotClosePeriod   = apperrors.Define(apperrors.ErrPrecondition, "period cannot be closed")
)

// Journal errors
var (
	ErrJournalNotFound         = apperrors.Define(apperrors.ErrNotFound, "journal not found")
	ErrJournalPosted           = apperrors.Define(apperrors.ErrInvalidState, "journal is posted and cannot be modified")
	ErrJournalAlreadyPosted    = apperrors.Define(apperrors.ErrInvalidState, "journal is already posted")
	ErrJournalValidationFailed = apperrors.Define(apperrors.ErrValidation, "journal validation failed")
	ErrLineNotFound            = apperrors.Define(apperrors.ErrNotFound, "journal line not found")
)

// Capital movement errors
var (
	ErrMovementNotFound      = apperrors.Define(apperrors.ErrNotFound, "capital movement not found")
	ErrMovementAlreadyLinked = apperrors.Define(apperrors.ErrInvalidState, "capital movement is already linked to a journal")
)

// Reference data errors
var (
	ErrAccountNotFound    = apperrors.Define(apperrors.ErrNotFound, "account not found")
	ErrPartnerNotFound    = apperrors.Define(apperrors.ErrNotFound, "partner not found")
	ErrEmployeeNotFound   = apperrors.Define(apperrors.ErrNotFound, "employee not found")
	ErrUserNotFound       = apperrors.Define(apperrors.ErrNotFound, "user not found")
	ErrDuplicateAccount   = apperrors.Define(apperrors.ErrDuplicate, "account code already exists")
	ErrDuplicateUsername  = apperrors.Define(apperrors.ErrDuplicate, "username already taken")
	ErrInvalidCredentials = apperrors.Define(apperrors.ErrUnauthorized, "invalid username or password")
)
