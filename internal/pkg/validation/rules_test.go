package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type ruleProbe struct {
	Branch       string `validate:"omitempty,branch"`
	NoticeBranch string `validate:"omitempty,noticebranch"`
	Category     string `validate:"omitempty,noticecategory"`
	Type         string `validate:"omitempty,materialtype"`
	Status       string `validate:"omitempty,contactstatus"`
}

func newProbeValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	rules := map[string]validator.Func{
		"branch":         BranchRule,
		"noticebranch":   NoticeBranchRule,
		"noticecategory": NoticeCategoryRule,
		"materialtype":   MaterialTypeRule,
		"contactstatus":  ContactStatusRule,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			t.Fatalf("RegisterValidation(%q): %v", tag, err)
		}
	}
	return v
}

func TestEnumRules(t *testing.T) {
	v := newProbeValidator(t)

	tests := []struct {
		name    string
		probe   ruleProbe
		wantErr bool
	}{
		{"valid branch", ruleProbe{Branch: "CSE"}, false},
		{"All rejected as user branch", ruleProbe{Branch: "All"}, true},
		{"unknown branch", ruleProbe{Branch: "IT"}, true},
		{"All accepted as notice branch", ruleProbe{NoticeBranch: "All"}, false},
		{"department accepted as notice branch", ruleProbe{NoticeBranch: "ECE"}, false},
		{"unknown notice branch", ruleProbe{NoticeBranch: "Everything"}, true},
		{"valid category", ruleProbe{Category: "Exam"}, false},
		{"unknown category", ruleProbe{Category: "Sports"}, true},
		{"valid type", ruleProbe{Type: "PYQ"}, false},
		{"unknown type", ruleProbe{Type: "Video"}, true},
		{"valid status", ruleProbe{Status: "Resolved"}, false},
		{"unknown status", ruleProbe{Status: "Closed"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.probe)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct(%+v) error = %v, wantErr %v", tt.probe, err, tt.wantErr)
			}
		})
	}
}
