package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect/internal/app/models"
	"github.com/educonnect/educonnect/internal/app/models/dto"
	"github.com/educonnect/educonnect/internal/app/repositories"
	"github.com/educonnect/educonnect/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextAccountID = "accountID"
	ContextEmail     = "email"
	ContextRole      = "role"
	ContextAccount   = "account"
)

// AuthMiddleware handles authentication and authorization
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	accountRepo repositories.IAccountRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, accountRepo repositories.IAccountRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		accountRepo: accountRepo,
	}
}

// JWTAuth validates the bearer token and puts the verified identity on the
// request context. Identity is never taken from the request body.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired checks that the authenticated account carries the given role
func (m *AuthMiddleware) RoleRequired(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Account role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != requiredRole {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// ApprovedStaffRequired re-reads the caller's account and checks that it is
// an approved staff account. Token claims alone are not enough: approval can
// be revoked after the token was issued. The fresh account is stored on the
// context for the handlers.
func (m *AuthMiddleware) ApprovedStaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, exists := c.Get(ContextAccountID)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Account information not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		accountIDInt, ok := accountID.(int64)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			errorDetail = errorDetail.WithDetails("Invalid account ID format")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		account, err := m.accountRepo.GetByID(c.Request.Context(), accountIDInt)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Account no longer exists")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if !account.IsApprovedStaff() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Staff approval required")
			errorDetail = errorDetail.WithDetails("Your staff account has not been approved yet")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextAccount, account)
		c.Next()
	}
}

// AccountFromContext returns the account stored by ApprovedStaffRequired
func AccountFromContext(c *gin.Context) (*models.Account, bool) {
	v, exists := c.Get(ContextAccount)
	if !exists {
		return nil, false
	}
	account, ok := v.(*models.Account)
	return account, ok
}

// AccountIDFromContext returns the authenticated account id set by JWTAuth
func AccountIDFromContext(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextAccountID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
