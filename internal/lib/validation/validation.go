// Package validation проверяет доменные структуры по тегам validate
// и превращает первое нарушение в models.ValidationError.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// Validator оборачивает validator.Validate. Имена полей берутся из json-тегов.
type Validator struct {
	validate *validator.Validate
}

// New создаёт Validator.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct проверяет структуру. Поля проверяются в порядке объявления,
// возвращается только первое нарушение.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	return FromFieldError(errs[0])
}

// FromFieldError формирует сообщение об ошибке поля.
func FromFieldError(fe validator.FieldError) *models.ValidationError {
	return &models.ValidationError{
		Field:   fe.Field(),
		Message: message(fe),
	}
}

// CastError описывает значение, которое не удалось привести к числу.
func CastError(field, value string) *models.ValidationError {
	return &models.ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Cast to Number failed for value %q at path `%s`.", value, field),
	}
}

// StringCastError описывает значение составного типа (объект, массив)
// в строковом поле.
func StringCastError(field, kind string) *models.ValidationError {
	return &models.ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Cast to string failed for value of type %s at path `%s`.", kind, field),
	}
}

// Required описывает отсутствующее обязательное поле.
func Required(field string) *models.ValidationError {
	return &models.ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Path `%s` is required.", field),
	}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Path `%s` (`%v`) is shorter than the minimum allowed length (%s).", field, fe.Value(), fe.Param())
		}
		return fmt.Sprintf("Path `%s` (%v) is less than minimum allowed value (%s).", field, fe.Value(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Path `%s` (`%v`) is longer than the maximum allowed length (%s).", field, fe.Value(), fe.Param())
		}
		return fmt.Sprintf("Path `%s` (%v) is more than maximum allowed value (%s).", field, fe.Value(), fe.Param())
	case "gt":
		return fmt.Sprintf("Path `%s` (%v) must be greater than %s.", field, fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("Path `%s` is invalid.", field)
	}
}
