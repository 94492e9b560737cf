package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

func TestAuthorize_AdminAlwaysAllowed(t *testing.T) {
	db := newTestDB(t)
	access := services.NewAccessService(db)
	admin := seedAdmin(t, db)
	hotel := seedHotel(t, db, admin)

	assert.NoError(t, access.Authorize(admin, hotel.ID))
}

func TestAuthorize_ManagerWithoutAssignmentDenied(t *testing.T) {
	db := newTestDB(t)
	access := services.NewAccessService(db)
	admin := seedAdmin(t, db)
	manager := seedManager(t, db)
	hotel := seedHotel(t, db, admin)

	err := access.Authorize(manager, hotel.ID)
	require.Error(t, err)
	assert.Equal(t, 403, utils.HTTPStatus(err))
}

func TestAuthorize_InactiveAssignmentDenied(t *testing.T) {
	db := newTestDB(t)
	access := services.NewAccessService(db)
	admin := seedAdmin(t, db)
	manager := seedManager(t, db)
	hotel := seedHotel(t, db, admin)

	assignment := models.HotelAssignment{HotelID: hotel.ID, ManagerID: manager.ID, Status: models.AssignmentInactive}
	require.NoError(t, db.Create(&assignment).Error)

	err := access.Authorize(manager, hotel.ID)
	require.Error(t, err)
	assert.Equal(t, 403, utils.HTTPStatus(err))
}

func TestAuthorize_ActiveAssignmentAllowed(t *testing.T) {
	db := newTestDB(t)
	access := services.NewAccessService(db)
	admin := seedAdmin(t, db)
	manager := seedManager(t, db)
	hotel := seedHotel(t, db, admin)

	assignment := models.HotelAssignment{HotelID: hotel.ID, ManagerID: manager.ID, Status: models.AssignmentActive}
	require.NoError(t, db.Create(&assignment).Error)

	assert.NoError(t, access.Authorize(manager, hotel.ID))
}

func TestAuthorize_OtherRoleDenied(t *testing.T) {
	db := newTestDB(t)
	access := services.NewAccessService(db)
	admin := seedAdmin(t, db)
	hotel := seedHotel(t, db, admin)

	stranger := models.Caller{ID: admin.ID, Role: "guest"}
	err := access.Authorize(stranger, hotel.ID)
	require.Error(t, err)
	assert.Equal(t, 403, utils.HTTPStatus(err))
}

func TestAssignManager_ReactivateWithoutDuplicateRow(t *testing.T) {
	db := newTestDB(t)
	access := services.NewAccessService(db)
	hotels := services.NewHotelService(db, access)
	admin := seedAdmin(t, db)
	manager := seedManager(t, db)
	hotel := seedHotel(t, db, admin)

	_, err := hotels.AssignManager(admin, hotel.ID, manager.ID, models.AssignmentActive)
	require.NoError(t, err)
	require.NoError(t, access.Authorize(manager, hotel.ID))

	// revoke
	_, err = hotels.AssignManager(admin, hotel.ID, manager.ID, models.AssignmentInactive)
	require.NoError(t, err)
	require.Error(t, access.Authorize(manager, hotel.ID))

	// restore
	_, err = hotels.AssignManager(admin, hotel.ID, manager.ID, models.AssignmentActive)
	require.NoError(t, err)
	require.NoError(t, access.Authorize(manager, hotel.ID))

	var count int64
	require.NoError(t, db.Model(&models.HotelAssignment{}).
		Where("hotel_id = ? AND manager_id = ?", hotel.ID, manager.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
