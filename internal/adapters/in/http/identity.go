package http

import (
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username     string `json:"username"`
	RealName     string `json:"realName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	LocationName string `json:"locationName"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func newSessionResponse(session *user.Session) sessionResponse {
	return sessionResponse{
		Token:     session.Token().String(),
		UserID:    session.UserID().String(),
		ExpiresAt: session.ExpiresAt(),
	}
}

func setSessionCookie(ctx echo.Context, session *user.Session) {
	ctx.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token().String(),
		Path:     "/",
		Expires:  session.ExpiresAt(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Register handles POST /auth/register. Registration doubles as login: the
// fresh session comes back as a cookie and in the body.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.Username, req.RealName, req.Email, req.Password, role, req.LocationName,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	session, err := s.commands.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	setSessionCookie(ctx, session)
	return ctx.JSON(http.StatusCreated, newSessionResponse(session))
}

// Login handles POST /auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewLoginCommand(req.Login, req.Password)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	session, err := s.commands.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	setSessionCookie(ctx, session)
	return ctx.JSON(http.StatusOK, newSessionResponse(session))
}

// Logout handles POST /auth/logout. The session row goes away and the cookie
// is expired.
func (s *Server) Logout(ctx echo.Context) error {
	token, err := extractSessionToken(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewLogoutCommand(token)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.Logout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return ctx.NoContent(http.StatusNoContent)
}

// Me handles GET /auth/me.
func (s *Server) Me(ctx echo.Context) error {
	query, err := queries.NewGetProfileQuery(actorID(ctx))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	profile, err := s.queries.GetProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"id":           profile.ID.String(),
		"username":     profile.Username,
		"realName":     profile.RealName,
		"email":        profile.Email,
		"role":         profile.Role,
		"locationName": profile.LocationName,
		"addresses":    profile.Addresses,
	})
}

// UpdateProfile handles PUT /api/profile.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	var req struct {
		RealName string `json:"realName"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateProfileCommand(actorID(ctx), req.RealName)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.UpdateProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddAddress handles POST /api/addresses.
func (s *Server) AddAddress(ctx echo.Context) error {
	var req struct {
		Address string `json:"address"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewAddAddressCommand(actorID(ctx), req.Address)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.AddAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveAddress handles DELETE /api/addresses.
func (s *Server) RemoveAddress(ctx echo.Context) error {
	var req struct {
		Address string `json:"address"`
	}
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveAddressCommand(actorID(ctx), req.Address)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.commands.RemoveAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
