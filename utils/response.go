package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func JSONSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{"success": true, "message": message, "data": data})
}

func JSONRecords(c *gin.Context, code int, message string, records interface{}, pagination *Pagination) {
	body := gin.H{"success": true, "message": message, "records": records}
	if pagination != nil {
		body["pagination"] = pagination
	}
	c.JSON(code, body)
}

// JSONAppError maps a service error onto the response envelope. Internal
// errors are logged with full detail and returned with a generic message.
func JSONAppError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status >= 500 {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	c.JSON(status, gin.H{"success": false, "error": PublicMessage(err)})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
