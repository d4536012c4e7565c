package repositories

import (
	"strings"
	"testing"

	"github.com/shs-edu/campus-portal/internal/app/models"
	"github.com/shs-edu/campus-portal/internal/app/models/dto"
)

func TestMaterialListConditionsApprovedAlways(t *testing.T) {
	sql, args := conditionsSQL(t, materialListConditions(dto.MaterialFilter{}))

	if sql != "(m.is_approved = ?)" {
		t.Errorf("sql = %q, want only the is_approved predicate", sql)
	}
	if len(args) != 1 || args[0] != true {
		t.Errorf("args = %v, want [true]", args)
	}
}

func TestMaterialListConditionsAllFilters(t *testing.T) {
	filter := dto.MaterialFilter{
		Branch:   models.BranchME,
		Semester: 4,
		Subject:  "Thermodynamics",
		Type:     models.MaterialNotes,
	}
	sql, args := conditionsSQL(t, materialListConditions(filter))

	for _, col := range []string{"m.is_approved", "m.branch", "m.semester", "m.subject", "m.type"} {
		if !strings.Contains(sql, col+" = ?") {
			t.Errorf("sql = %q, missing predicate on %s", sql, col)
		}
	}
	if got := strings.Count(sql, " AND "); got != 4 {
		t.Errorf("sql = %q, want 4 conjunctions, got %d", sql, got)
	}
	if len(args) != 5 {
		t.Errorf("args = %v, want 5 bind values", args)
	}
}

func TestMaterialListConditionsPartialFilter(t *testing.T) {
	sql, args := conditionsSQL(t, materialListConditions(dto.MaterialFilter{Semester: 7}))

	if strings.Contains(sql, "m.branch") || strings.Contains(sql, "m.subject") || strings.Contains(sql, "m.type") {
		t.Errorf("sql = %q, unset filters must not appear", sql)
	}
	if !strings.Contains(sql, "m.semester = ?") {
		t.Errorf("sql = %q, missing semester predicate", sql)
	}
	if len(args) != 2 || args[1] != 7 {
		t.Errorf("args = %v, want [true 7]", args)
	}
}

// Clients cannot widen the listing past approved rows; there is no filter
// field that maps onto is_approved.
func TestMaterialListConditionsApprovalNotOverridable(t *testing.T) {
	filter := dto.MaterialFilter{Branch: models.BranchCSE, Type: models.MaterialPYQ}
	sql, _ := conditionsSQL(t, materialListConditions(filter))

	if !strings.HasPrefix(sql, "(m.is_approved = ?") {
		t.Errorf("sql = %q, is_approved must lead the predicate", sql)
	}
}
