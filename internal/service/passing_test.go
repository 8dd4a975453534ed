package service

import (
	"errors"
	"testing"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

func TestEvaluateQuantitative(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		threshold float64
		condition model.PassingCondition
		want      bool
	}{
		{"gt below threshold", 449, 450, model.CondGt, false},
		{"gt at threshold", 450, 450, model.CondGt, false},
		{"gt above threshold", 451, 450, model.CondGt, true},
		{"gte below threshold", 114.5, 115, model.CondGte, false},
		{"gte at threshold", 115, 115, model.CondGte, true},
		{"gte above threshold", 117.5, 115, model.CondGte, true},
		{"lt below threshold", 4.5, 4.8, model.CondLt, true},
		{"lt at threshold", 4.8, 4.8, model.CondLt, false},
		{"lte at threshold", 4.8, 4.8, model.CondLte, true},
		{"lte above threshold", 4.9, 4.8, model.CondLte, false},
		{"eq match", 1, 1, model.CondEq, true},
		{"eq mismatch", 1.01, 1, model.CondEq, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := &model.QuantitativeDetail{
				PassingScore:     tt.threshold,
				PassingCondition: tt.condition,
			}
			got, err := EvaluateQuantitative(tt.score, detail)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EvaluateQuantitative(%v, %v %s) = %v, want %v",
					tt.score, tt.threshold, tt.condition, got, tt.want)
			}
		})
	}
}

func TestEvaluateQuantitativeUnknownCondition(t *testing.T) {
	detail := &model.QuantitativeDetail{PassingScore: 100, PassingCondition: "between"}
	_, err := EvaluateQuantitative(100, detail)
	if !errors.Is(err, ErrNoPassingCondition) {
		t.Fatalf("got %v, want ErrNoPassingCondition", err)
	}
}

func TestEvaluateQualitative(t *testing.T) {
	detail := &model.QualitativeDetail{PassingChoiceID: 7}

	if !EvaluateQualitative(7, detail) {
		t.Error("passing choice id should pass")
	}
	// Same label on another assessment gets a different id and must not pass.
	if EvaluateQualitative(12, detail) {
		t.Error("different choice id should not pass")
	}
}
