package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

func TestAssessmentInputDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want AssessmentInput
	}{
		{
			"quantitative with string value",
			`{"id": 3, "type": "quantitative", "value": "117.5"}`,
			AssessmentInput{ID: 3, Kind: model.KindQuantitative, Value: "117.5"},
		},
		{
			"quantitative with numeric value",
			`{"id": 3, "type": "quantitative", "value": 315}`,
			AssessmentInput{ID: 3, Kind: model.KindQuantitative, Value: "315"},
		},
		{
			"qualitative choice label",
			`{"id": 9, "type": "qualitative", "value": "perfect"}`,
			AssessmentInput{ID: 9, Kind: model.KindQualitative, Value: "perfect"},
		},
		{
			"did not test without value",
			`{"id": 9, "type": "qualitative", "didNotTest": true}`,
			AssessmentInput{ID: 9, Kind: model.KindQualitative, DidNotTest: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got AssessmentInput
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAssessmentInputRejectsUnknownType(t *testing.T) {
	var got AssessmentInput
	err := json.Unmarshal([]byte(`{"id": 1, "type": "freeform", "value": "x"}`), &got)
	if !errors.Is(err, ErrInvalidAssessmentType) {
		t.Fatalf("got %v, want ErrInvalidAssessmentType", err)
	}
}

func TestBuildReportRequestDecode(t *testing.T) {
	payload := `{
		"userId": 4,
		"templateId": 2,
		"date": "2026-03-14",
		"assessments": {
			"field_1": {"id": 1, "type": "quantitative", "value": "117.5"},
			"field_2": {"id": 9, "type": "qualitative", "value": "average"}
		}
	}`

	var req BuildReportRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.UserID != 4 || req.TemplateID != 2 || req.Date != "2026-03-14" {
		t.Errorf("header fields wrong: %+v", req)
	}
	if len(req.Assessments) != 2 {
		t.Fatalf("got %d assessments, want 2", len(req.Assessments))
	}
	if req.Assessments["field_2"].Kind != model.KindQualitative {
		t.Errorf("field_2 kind = %s, want qualitative", req.Assessments["field_2"].Kind)
	}
}
