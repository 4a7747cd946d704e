package http

import (
	"net/http"

	userDomain "activity-report-service/internal/domain/user"
	useruc "activity-report-service/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *useruc.Usecase }

func NewUserHandler(uc *useruc.Usecase) *UserHandler { return &UserHandler{uc: uc} }

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	if users == nil {
		users = []userDomain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	usr, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

type updateProfileReq struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// UpdateProfile lets admins patch anyone and everyone else patch only
// themselves. Role is not part of the payload: it cannot be changed
// through this surface.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if a.Role != userDomain.RoleAdmin && a.ID != id {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	}

	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	usr, err := h.uc.UpdateProfile(c.Request().Context(), useruc.UpdateProfileInput{
		ID:       id,
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}
