package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skybook/skybook/internal/models"
	"github.com/skybook/skybook/internal/session"
	"github.com/skybook/skybook/internal/validate"
)

// AuthHandler serves the mock login/registration surface. Credentials are
// validated, then discarded; the session store mints the identity.
type AuthHandler struct {
	store session.Store
}

func NewAuthHandler(store session.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

func (h *AuthHandler) Login(c echo.Context) error {
	return h.authenticate(c, validate.ModeLogin)
}

func (h *AuthHandler) Register(c echo.Context) error {
	return h.authenticate(c, validate.ModeRegister)
}

func (h *AuthHandler) authenticate(c echo.Context, mode validate.Mode) error {
	var creds models.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if errs := validate.Credentials(mode, creds); !errs.Valid() {
		return c.JSON(http.StatusUnprocessableEntity, models.ValidationResponse{
			Error:  "validation_error",
			Fields: errs,
			Code:   http.StatusUnprocessableEntity,
		})
	}

	user, err := h.store.Login(c.Request().Context(), creds.Name, creds.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "session_error",
			Message: "Failed to save session: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusOK, user)
}

// Session reports the current user, or 204 when nobody is logged in.
func (h *AuthHandler) Session(c echo.Context) error {
	user, err := h.store.Restore(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "session_error",
			Message: "Failed to read session: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
	if user == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.store.Logout(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "session_error",
			Message: "Failed to clear session: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}
