package handlers

import (
	"errors"
	"net/http"

	appErrors "github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/errors"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/utils"
	"github.com/Mohamad-Kahil/tiles-and-tools-checkout/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// The UI owns session issuance; every session-scoped route requires the
// header.
const sessionHeader = "X-Session-ID"

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {

	id := r.Header.Get(sessionHeader)
	if id == "" {
		response.Error(w, appErrors.BadRequestError("Session ID is required"))

		return "", false
	}

	return id, true
}

// decodeAndValidate reads the JSON body into dest and runs struct
// validation, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, dest any) bool {

	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithError(err))

		return false
	}

	if err := utils.ValidateStruct(validate, dest); err != nil {

		var validationErrs validator.ValidationErrors

		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
		} else {
			response.Error(w, appErrors.ValidationError("Invalid request payload"))
		}

		return false
	}

	return true
}
