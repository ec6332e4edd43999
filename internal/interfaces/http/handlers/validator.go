package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "github.com/resumelift/resumelift/internal/domain/subscription/valueobjects"
)

// The tier binding tag validates against the tier value object rather than a
// hardcoded oneof list, so adding a plan does not require touching handlers.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("tier", validTier)
	}
}

func validTier(fl validator.FieldLevel) bool {
	_, err := vo.NewTier(fl.Field().String())
	return err == nil
}
