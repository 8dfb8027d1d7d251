package handler

import (
	"github.com/abicrealty/voucher-api/internal/application/service"
	"github.com/abicrealty/voucher-api/internal/presentation/http/dto/request"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// accountIDParam reads the account id for number generation from the query
// string, falling back to a JSON body for POST callers.
func accountIDParam(c *gin.Context) (uuid.UUID, error) {
	if idStr := c.Query("account_id"); idStr != "" {
		return uuid.Parse(idStr)
	}
	var req request.GenerateNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(req.AccountID)
}

// GetActor builds the service actor from the authenticated request. Returns
// nil when the request carries no authenticated user.
func GetActor(c *gin.Context) *service.Actor {
	userID := GetUserID(c)
	if userID == nil {
		return nil
	}
	return &service.Actor{
		ID:    *userID,
		Email: GetUserEmail(c),
		Role:  GetUserRole(c),
	}
}
