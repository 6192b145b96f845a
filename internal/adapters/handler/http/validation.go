package http

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
)

// MaxRequestBody caps every JSON body. Larger requests get 413.
const MaxRequestBody = 1 << 20

var registerValidators sync.Once

// RegisterValidators adds the `mood` binding tag to gin's validator engine and
// reports fields by their JSON name.
func RegisterValidators() {
	registerValidators.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("mood", validateMood)
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})
}

func validateMood(fl validator.FieldLevel) bool {
	_, err := domain.ParseMood(fl.Field().String())
	return err == nil
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// bindJSON writes the error response itself and reports whether the handler may continue.
func bindJSON(c *gin.Context, req any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestBody)

	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
		return false
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		for _, fe := range verrs {
			if fe.Tag() == "mood" {
				handleError(c, domain.ErrInvalidMood)
				return false
			}
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: validationMessage(verrs[0])})
		return false
	}

	c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed JSON body"})
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
