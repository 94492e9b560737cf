package utils

import (
	"errors"
	"testing"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapDBError(t *testing.T) {
	err := WrapDBError(gorm.ErrRecordNotFound, "hotel")
	assert.Equal(t, 404, HTTPStatus(err))
	assert.Equal(t, "hotel not found", PublicMessage(err))

	err = WrapDBError(&mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry"}, "menu")
	assert.Equal(t, 409, HTTPStatus(err))
	assert.Equal(t, "duplicate menu", PublicMessage(err))

	err = WrapDBError(errors.New("connection reset"), "hotel")
	assert.Equal(t, 500, HTTPStatus(err))
	assert.Equal(t, "internal server error", PublicMessage(err))
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	assert.Equal(t, 500, HTTPStatus(errors.New("plain")))
}

func TestPublicMessage_HidesInternalDetail(t *testing.T) {
	err := InternalError(errors.New("dial tcp 10.0.0.5: refused"))
	assert.Equal(t, "internal server error", PublicMessage(err))
	assert.Contains(t, err.Error(), "refused")
}
