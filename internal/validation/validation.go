// Package validation 將 go-playground/validator 包裝成 echo.Validator，
// 並把第一個錯誤欄位轉成 apperr 的 Validation 錯誤
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"project-hub/internal/apperr"
	"project-hub/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator 實作 echo.Validator
// swagger:ignore
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	// 錯誤欄位使用 json 名稱
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// 未出現或 null 的時數視為空值，交給 omitempty
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		h, ok := field.Interface().(model.OptionalHours)
		if !ok {
			return nil
		}
		// 回傳指標：nil 由 omitempty 略過，明確送出的 0 仍須通過數值規則
		return h.Value
	}, model.OptionalHours{})
	return &Validator{validate: v}
}

// Validate 驗證 struct；失敗時回傳第一個錯誤欄位的 *apperr.Error
func (cv *Validator) Validate(i interface{}) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperr.Validation(fe.Field(), rule(fe))
	}
	return apperr.Internal(err)
}

func rule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}

// ParseUUID 解析路徑或查詢參數中的 UUID，失敗時以 field 名稱回報
func ParseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation(field, "must be a valid UUID")
	}
	return id, nil
}
