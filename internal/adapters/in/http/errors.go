package http

import (
	"errors"
	"fmt"
	"net/http"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// statusOf maps the error taxonomy onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrBusinessRuleIsViolated):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		message = http.StatusText(status)
	}
	return ctx.JSON(status, Error{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func errInvalidBody(cause any) error {
	return errs.NewValueIsInvalidErrorWithCause("request body", fmt.Errorf("%v", cause))
}

// pathUUID binds a uuid path parameter the way generated oapi-codegen servers do.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromGoogle(id), nil
}

func optionalUUID(id *openapi_types.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := kernel.UUIDFromGoogle(*id)
	return &v
}

func wireUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}
