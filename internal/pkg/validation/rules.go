// Package validation registers the enum binding rules used by request DTOs.
package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/shs-edu/campus-portal/internal/app/models"
)

// enum validator functions, usable directly in tests

// BranchRule accepts the five department branches.
func BranchRule(fl validator.FieldLevel) bool {
	return models.Branch(fl.Field().String()).IsValid()
}

// NoticeBranchRule additionally accepts the "All" sentinel.
func NoticeBranchRule(fl validator.FieldLevel) bool {
	b := models.Branch(fl.Field().String())
	return b == models.BranchAll || b.IsValid()
}

// NoticeCategoryRule accepts the six notice categories.
func NoticeCategoryRule(fl validator.FieldLevel) bool {
	return models.NoticeCategory(fl.Field().String()).IsValid()
}

// NoticePriorityRule accepts Low, Medium and High.
func NoticePriorityRule(fl validator.FieldLevel) bool {
	return models.NoticePriority(fl.Field().String()).IsValid()
}

// MaterialTypeRule accepts the six material types.
func MaterialTypeRule(fl validator.FieldLevel) bool {
	return models.MaterialType(fl.Field().String()).IsValid()
}

// ContactStatusRule accepts the contact handling statuses.
func ContactStatusRule(fl validator.FieldLevel) bool {
	return models.ContactStatus(fl.Field().String()).IsValid()
}

// RegisterRules installs the custom enum rules on gin's binding validator.
// Must run before the router starts serving requests.
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	rules := map[string]validator.Func{
		"branch":         BranchRule,
		"noticebranch":   NoticeBranchRule,
		"noticecategory": NoticeCategoryRule,
		"noticepriority": NoticePriorityRule,
		"materialtype":   MaterialTypeRule,
		"contactstatus":  ContactStatusRule,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
