package validator

import (
	"github.com/go-playground/validator/v10"

	"kora_backend/internal/auth"
)

func registerDomainRules(v *validator.Validate) {
	// role_code: element-level rule for []int role fields (use "dive,role_code").
	_ = v.RegisterValidation("role_code", func(fl validator.FieldLevel) bool {
		code, ok := fl.Field().Interface().(int)
		if !ok {
			return false
		}
		switch code {
		case auth.RoleUser, auth.RoleAdmin, auth.RoleGroupAdmin:
			return true
		}
		return false
	})
}
