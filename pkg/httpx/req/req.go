package req

import (
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"profile_validator/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(validationCode(err)),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}

// validationCode reports oversized input separately so clients can tell it
// apart from malformed requests.
func validationCode(err error) failure.ErrorCode {
	var fieldErrs validator.ValidationErrors

	if errors.As(err, &fieldErrs) && lo.SomeBy(fieldErrs, func(fe validator.FieldError) bool {
		return fe.Tag() == "max"
	}) {
		return errcodes.InputTooLong
	}

	return errcodes.ValidationError
}
