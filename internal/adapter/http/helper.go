package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	mw "activity-report-service/internal/adapter/middleware"
	reportDomain "activity-report-service/internal/domain/report"
	userDomain "activity-report-service/internal/domain/user"
	useruc "activity-report-service/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

func actor(c echo.Context) (mw.Actor, error) {
	a, ok := mw.ActorFrom(c)
	if !ok {
		return mw.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return a, nil
}

func paramID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// writeErr translates core errors into transport status codes. Unknown
// errors are logged and collapsed into a bare 500.
func writeErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, reportDomain.ErrValidation), errors.Is(err, useruc.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, reportDomain.ErrNotFound), errors.Is(err, userDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, reportDomain.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, reportDomain.ErrInvalidState):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, userDomain.ErrUsernameTaken), errors.Is(err, userDomain.ErrEmailTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, userDomain.ErrBadCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
