package service

import (
	"encoding/json"
	"fmt"

	"github.com/anthonypiegaro/OA-Reporting-Backend/internal/model"
)

// BuildReportRequest is the payload of one report build. Assessments is
// keyed by the form's field name; only the per-entry id matters.
type BuildReportRequest struct {
	UserID      uint                       `json:"userId"`
	TemplateID  uint                       `json:"templateId"`
	Date        string                     `json:"date"`
	Assessments map[string]AssessmentInput `json:"assessments"`
}

// AssessmentInput is one scored assessment on the form. The declared type is
// resolved here, at the JSON boundary, so that everything past binding works
// with a closed kind.
type AssessmentInput struct {
	ID         uint
	Kind       model.AssessmentKind
	Value      string
	DidNotTest bool
}

func (in *AssessmentInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         uint            `json:"id"`
		Type       string          `json:"type"`
		Value      json.RawMessage `json:"value"`
		DidNotTest bool            `json:"didNotTest"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch model.AssessmentKind(raw.Type) {
	case model.KindQuantitative:
		in.Kind = model.KindQuantitative
	case model.KindQualitative:
		in.Kind = model.KindQualitative
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAssessmentType, raw.Type)
	}

	in.ID = raw.ID
	in.DidNotTest = raw.DidNotTest

	if len(raw.Value) == 0 || string(raw.Value) == "null" {
		return nil
	}

	// Clients send quantitative values as either a JSON string or a number.
	var s string
	if err := json.Unmarshal(raw.Value, &s); err == nil {
		in.Value = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw.Value, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidScore, string(raw.Value))
	}
	in.Value = n.String()
	return nil
}
