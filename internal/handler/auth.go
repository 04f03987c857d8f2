package handler

import (
	"errors"   // errors.Is comparisons against store sentinels
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/onlinedrinkshop/backend/internal/config" // app configuration
	"github.com/onlinedrinkshop/backend/internal/shop"   // session facade
	"github.com/onlinedrinkshop/backend/internal/store"  // sentinel errors
	"github.com/onlinedrinkshop/backend/internal/utils"  // token issuing
)

// AuthHandler bundles dependencies for account endpoints.
type AuthHandler struct {
	Cfg  config.Config
	Shop *shop.Shop
}

func NewAuthHandler(cfg config.Config, s *shop.Shop) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Shop: s}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type changePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
type topUpReq struct {
	Amount int `json:"amount"`
}

type tokenPart struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}
type userPart struct {
	ID     uint64 `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Tokens int    `json:"tokens"`
}
type authResp struct {
	User   userPart  `json:"user"`
	Access tokenPart `json:"access"`
}

// Register: create the account, open the session and return an access
// token. Emails are trimmed but kept case-sensitive; the account set
// matches them exactly.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password/name required"})
	}

	u, err := h.Shop.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusCreated, authResp{
		User:   userPart{ID: u.ID, Email: u.Email, Name: u.Name, Tokens: u.Tokens},
		Access: tokenPart{Token: access.Token, Expires: access.Exp.Format(timeLayout)},
	})
}

// Login: verify credentials, open the session and return an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	u, err := h.Shop.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:   userPart{ID: u.ID, Email: u.Email, Name: u.Name, Tokens: u.Tokens},
		Access: tokenPart{Token: access.Token, Expires: access.Exp.Format(timeLayout)},
	})
}

// Logout: close the session. The session-scoped cart and the transient
// flags are reset by the facade.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Shop.Logout()
	return c.NoContent(http.StatusNoContent)
}

// Me: return the session user.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := h.Shop.CurrentUser()
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no user logged in"})
	}
	return c.JSON(http.StatusOK, userPart{ID: u.ID, Email: u.Email, Name: u.Name, Tokens: u.Tokens})
}

// ChangePassword: verify the old password and swap in the new one.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "old_password/new_password required"})
	}
	if err := h.Shop.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		case errors.Is(err, store.ErrNoActiveSession):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no user logged in"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "change password failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// TopUp: add tokens to the session user's balance and return the updated
// user.
func (h *AuthHandler) TopUp(c echo.Context) error {
	var req topUpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	u, err := h.Shop.TopUp(req.Amount)
	if err != nil {
		if errors.Is(err, store.ErrNoActiveSession) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no user logged in"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "top up failed"})
	}
	return c.JSON(http.StatusOK, userPart{ID: u.ID, Email: u.Email, Name: u.Name, Tokens: u.Tokens})
}
