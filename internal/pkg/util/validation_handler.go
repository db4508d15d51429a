package util

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 校验 DTO，返回 字段->提示 的映射，空表示通过
func ValidateDTO(dto any) map[string]string {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return map[string]string{"request": err.Error()}
	}

	return ValidationFields(vErrs)
}

// IsEmail 邮箱格式校验
func IsEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// ValidationFields 将 validator 错误转换为 字段->提示 的映射
func ValidationFields(vErrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		fields[SnakeCase(fe.Field())] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	label := FieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return label + " is too short"
	case "max":
		return label + " is too long"
	}
	return label + " is invalid"
}

// SnakeCase FullName -> full_name
func SnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FieldLabel FullName -> Full Name
func FieldLabel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
