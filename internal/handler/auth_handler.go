package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"goat-dashboard/internal/auth"
	"goat-dashboard/pkg/jwtutil"
	"goat-dashboard/pkg/logger"
	"goat-dashboard/prometheus"
)

// AuthHandler serves login and token verification
type AuthHandler struct {
	auth *auth.Service
	jwt  *jwtutil.JWTUtil
}

func NewAuthHandler(authService *auth.Service, jwt *jwtutil.JWTUtil) *AuthHandler {
	return &AuthHandler{auth: authService, jwt: jwt}
}

func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	// Parse request
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	// All authentication failures collapse to the same response
	identity, err := h.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		log.Error("Authentication failed", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_credentials")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := h.jwt.GenerateToken(identity.ID, identity.Email, identity.Name, identity.Role, identity.Designation)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	// Increment active tokens gauge
	prometheus.IncreaseActiveTokens()

	log.Info("User logged in",
		zap.String("email", identity.Email),
		zap.String("role", identity.Role))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": map[string]interface{}{
			"id":          identity.ID,
			"email":       identity.Email,
			"name":        identity.Name,
			"role":        identity.Role,
			"designation": identity.Designation,
		},
	})
}

// Verify validates a bearer token and echoes the identity baked into it
func (h *AuthHandler) Verify(c echo.Context) error {
	log := logger.FromContext(c)

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		log.Error("Invalid Authorization header format")
		prometheus.RecordAuthError("invalid_auth_format")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
	}

	claims, err := h.jwt.ValidateToken(parts[1])
	if err != nil {
		log.Error("Invalid JWT token", zap.Error(err))
		prometheus.RecordAuthError("invalid_token")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"valid": true,
		"user": map[string]interface{}{
			"id":          claims.UserID,
			"email":       claims.Email,
			"name":        claims.Name,
			"role":        claims.Role,
			"designation": claims.Designation,
		},
	})
}

func MetricsHandler(c echo.Context) error {
	handler := prometheus.GetPrometheusHandler()
	handler.ServeHTTP(c.Response(), c.Request())
	return nil
}
