package controller

import (
	"errors"
	"net/http"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/service"
)

// httpStatus maps service errors onto the response codes the clients expect:
// bad input and dangling references are 400, a missing report is 404,
// corrupt reference data is 500.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrReportNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailInUse):
		return http.StatusConflict
	case errors.Is(err, service.ErrNoPassingCondition),
		errors.Is(err, service.ErrMissingDetail),
		errors.Is(err, service.ErrPassingChoiceForeign):
		return http.StatusInternalServerError
	case errors.Is(err, service.ErrTemplateNotProvided),
		errors.Is(err, service.ErrDateNotProvided),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrAssessmentsNotProvided),
		errors.Is(err, service.ErrInvalidAssessmentType),
		errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrAthleteNotProvided),
		errors.Is(err, service.ErrInvalidMetric),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, service.ErrAssessmentNotFound),
		errors.Is(err, service.ErrChoiceNotFound),
		errors.Is(err, service.ErrPitchNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
