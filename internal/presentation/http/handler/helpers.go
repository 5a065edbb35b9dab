package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetOperatorID extracts the operator ID from the Gin context
func GetOperatorID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("operator_id")
	if !exists {
		return nil
	}
	operatorID, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &operatorID
}

// GetOperatorEmail extracts the operator email from the Gin context
func GetOperatorEmail(c *gin.Context) string {
	email, exists := c.Get("operator_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// IsOperator reports whether the request carries a valid operator session
func IsOperator(c *gin.Context) bool {
	return GetOperatorID(c) != nil
}
