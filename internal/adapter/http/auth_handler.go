package http

import (
	"net/http"
	"time"

	mw "activity-report-service/internal/adapter/middleware"
	userDomain "activity-report-service/internal/domain/user"
	useruc "activity-report-service/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc        *useruc.Usecase
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthHandler(uc *useruc.Usecase, jwtSecret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type registerReq struct {
	Username string `json:"username"  validate:"required,min=3"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role"      validate:"omitempty,oneof=STAFF PIMPINAN ADMIN"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	usr, err := h.uc.Register(c.Request().Context(), useruc.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     userDomain.Role(req.Role),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, usr)
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Token string           `json:"token"`
	User  *userDomain.User `json:"user"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	usr, err := h.uc.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeErr(c, err)
	}
	token, err := mw.IssueToken(h.jwtSecret, usr, h.tokenTTL)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, loginResp{Token: token, User: usr})
}
