package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hotel-pms-backend/middleware"
	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

func callerFrom(c *gin.Context) (models.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
	}
	return caller, ok
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func uuidQuery(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query(name))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid or missing "+name)
		return uuid.Nil, false
	}
	return id, true
}

// dateQuery reads an optional YYYY-MM-DD query param, defaulting to today.
func dateQuery(c *gin.Context, name string) (datatypes.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return utils.Today(), true
	}
	date, err := utils.ParseDate(raw)
	if err != nil {
		utils.JSONAppError(c, err)
		return datatypes.Date{}, false
	}
	return date, true
}
