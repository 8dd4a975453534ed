package service

import (
	"fmt"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

// EvaluateQuantitative compares an observed score against the assessment's
// passing threshold under its configured condition. An unrecognized
// condition is corrupt reference data, not a failed test.
func EvaluateQuantitative(score float64, detail *model.QuantitativeDetail) (bool, error) {
	switch detail.PassingCondition {
	case model.CondEq:
		return score == detail.PassingScore, nil
	case model.CondGt:
		return score > detail.PassingScore, nil
	case model.CondGte:
		return score >= detail.PassingScore, nil
	case model.CondLt:
		return score < detail.PassingScore, nil
	case model.CondLte:
		return score <= detail.PassingScore, nil
	default:
		return false, fmt.Errorf("%w (condition %q)", ErrNoPassingCondition, detail.PassingCondition)
	}
}

// EvaluateQualitative passes iff the chosen choice is the configured passing
// choice. Identity comparison: two choices with the same label but different
// ids are not equal.
func EvaluateQualitative(choiceID uint, detail *model.QualitativeDetail) bool {
	return choiceID == detail.PassingChoiceID
}
