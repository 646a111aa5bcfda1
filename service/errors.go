package service

import (
	"fmt"

	"Reelgen/validation"
)

// ValidationError 表单校验失败。Handler 层捕获后转成 422 响应
type ValidationError struct {
	Errors []validation.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "表单校验失败"
	}
	first := e.Errors[0]
	field := first.Field
	if field == validation.FormLevel {
		field = "form"
	}
	return fmt.Sprintf("表单校验失败: %s: %s", field, first.Reason)
}

func NewValidationError(errs []validation.FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
