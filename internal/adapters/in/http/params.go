package http

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// pathUUID binds a simple-style UUID path parameter.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(raw[:])
}

// optionalUUID parses an optional UUID form or query value.
func optionalUUID(name, value string) (*kernel.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &id, nil
}

// queryInt binds an optional form-style integer query parameter, keeping fallback
// when it is absent.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	var value *int
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("not an integer: %w", err))
	}
	if value == nil {
		return fallback, nil
	}
	return *value, nil
}

func queryBool(c echo.Context, name string) (bool, error) {
	var value *bool
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value != nil && *value, nil
}
