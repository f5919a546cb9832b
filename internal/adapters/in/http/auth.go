// Package http exposes the order ledger over a JSON API built on Echo.
// Handlers translate requests into commands and queries, and map domain
// errors onto HTTP status codes. Authentication is a signed JWT carrying the
// full acting identity, resolved once at login.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"shipledger/internal/core/application/usecases/queries"
	"shipledger/internal/core/domain/model/access"
	"shipledger/internal/core/domain/model/kernel"
	"shipledger/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	tokenLifetime   = 8 * time.Hour
	actorContextKey = "actor"
)

// sessionClaims is the JWT payload. The partner/agent linkage is frozen at
// login; re-linking a login requires signing in again.
type sessionClaims struct {
	Username      string `json:"username"`
	Role          string `json:"role"`
	VisibleFields string `json:"visibleFields"`
	PartnerID     string `json:"partnerId,omitempty"`
	AgentID       string `json:"agentId,omitempty"`
	jwt.RegisteredClaims
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(req.Username, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	identity, err := s.authenticateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrAuthorization) {
			return ctx.JSON(http.StatusUnauthorized, errorBody("Invalid credentials"))
		}
		return writeError(ctx, err)
	}

	token, err := s.issueToken(identity)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Username: identity.Username,
		Role:     identity.Role,
	})
}

func (s *Server) issueToken(identity queries.AuthenticatedUserView) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username:      identity.Username,
		Role:          identity.Role,
		VisibleFields: identity.VisibleFields,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	if identity.PartnerID != nil {
		claims.PartnerID = identity.PartnerID.String()
	}
	if identity.AgentID != nil {
		claims.AgentID = identity.AgentID.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// RequireActor is the authentication middleware: it verifies the bearer
// token and rebuilds the acting identity for downstream handlers.
func (s *Server) RequireActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return ctx.JSON(http.StatusUnauthorized, errorBody("Missing bearer token"))
		}

		var claims sessionClaims
		token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
			return s.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return ctx.JSON(http.StatusUnauthorized, errorBody("Invalid or expired token"))
		}

		actor, err := actorFromClaims(claims)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorBody("Invalid or expired token"))
		}

		ctx.Set(actorContextKey, actor)
		return next(ctx)
	}
}

func actorFromClaims(claims sessionClaims) (access.Actor, error) {
	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return access.Actor{}, err
	}

	role, err := access.RoleFromString(claims.Role)
	if err != nil {
		return access.Actor{}, err
	}

	partnerID, err := optionalIDFromString(claims.PartnerID)
	if err != nil {
		return access.Actor{}, err
	}
	agentID, err := optionalIDFromString(claims.AgentID)
	if err != nil {
		return access.Actor{}, err
	}

	return access.NewActor(userID, claims.Username, role,
		access.NewFieldSet(claims.VisibleFields), partnerID, agentID)
}

func optionalIDFromString(s string) (*kernel.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func currentActor(ctx echo.Context) access.Actor {
	actor, _ := ctx.Get(actorContextKey).(access.Actor)
	return actor
}
