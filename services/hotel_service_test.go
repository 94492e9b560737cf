package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

func TestCreateHotel_AdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewHotelService(db, services.NewAccessService(db))
	manager := seedManager(t, db)

	_, err := svc.CreateHotel(manager, services.HotelInput{Name: "Nope Inn"})
	require.Error(t, err)
	assert.Equal(t, 403, utils.HTTPStatus(err))

	admin := seedAdmin(t, db)
	hotel, err := svc.CreateHotel(admin, services.HotelInput{Name: "Sunrise Lodge", TotalRooms: 12})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, hotel.CreatedByID)
	assert.NotEqual(t, uuid.Nil, hotel.ID)
}

func TestListHotels_ScopedByRole(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewHotelService(db, services.NewAccessService(db))
	admin := seedAdmin(t, db)
	otherAdmin := seedAdmin(t, db)
	manager := seedManager(t, db)

	mine := seedHotel(t, db, admin)
	theirs := seedHotel(t, db, otherAdmin)

	hotels, err := svc.ListHotels(admin)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, mine.ID, hotels[0].ID)

	// manager sees nothing until actively assigned
	hotels, err = svc.ListHotels(manager)
	require.NoError(t, err)
	assert.Empty(t, hotels)

	_, err = svc.AssignManager(otherAdmin, theirs.ID, manager.ID, models.AssignmentActive)
	require.NoError(t, err)

	hotels, err = svc.ListHotels(manager)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, theirs.ID, hotels[0].ID)

	// revoked assignments drop out of the listing
	_, err = svc.AssignManager(otherAdmin, theirs.ID, manager.ID, models.AssignmentInactive)
	require.NoError(t, err)
	hotels, err = svc.ListHotels(manager)
	require.NoError(t, err)
	assert.Empty(t, hotels)
}

func TestDeleteHotel_RefusedWhileGuestHistoryExists(t *testing.T) {
	db := newTestDB(t)
	access := services.NewAccessService(db)
	hotelSvc := services.NewHotelService(db, access)
	staySvc := services.NewGuestStayService(db, access)
	admin := seedAdmin(t, db)
	hotel := seedHotel(t, db, admin)

	stay, err := staySvc.CreateStay(admin, services.CreateStayInput{
		HotelID: hotel.ID, GuestName: "Asha", CheckinDate: utils.Today(), CheckinTime: "14:00", Rent: money(900),
	})
	require.NoError(t, err)

	err = hotelSvc.DeleteHotel(admin, hotel.ID)
	require.Error(t, err)
	assert.Equal(t, 409, utils.HTTPStatus(err))

	// hotel and its ledger are still intact
	var count int64
	require.NoError(t, db.Model(&models.Hotel{}).Where("id = ?", hotel.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// once the stay is gone the hotel can be removed
	require.NoError(t, staySvc.DeleteStay(admin, stay.ID))
	require.NoError(t, hotelSvc.DeleteHotel(admin, hotel.ID))

	err = db.First(&models.Hotel{}, "id = ?", hotel.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteHotel_RemovesAssignmentsAndRooms(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewHotelService(db, services.NewAccessService(db))
	admin := seedAdmin(t, db)
	manager := seedManager(t, db)
	hotel := seedHotel(t, db, admin)

	_, err := svc.AssignManager(admin, hotel.ID, manager.ID, models.AssignmentActive)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Room{HotelID: hotel.ID, RoomNumber: "101", Floor: "1"}).Error)

	require.NoError(t, svc.DeleteHotel(admin, hotel.ID))

	var assignments, rooms int64
	require.NoError(t, db.Model(&models.HotelAssignment{}).Where("hotel_id = ?", hotel.ID).Count(&assignments).Error)
	require.NoError(t, db.Model(&models.Room{}).Where("hotel_id = ?", hotel.ID).Count(&rooms).Error)
	assert.Zero(t, assignments)
	assert.Zero(t, rooms)
}

func TestAssignManager_RejectsNonManagerUser(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewHotelService(db, services.NewAccessService(db))
	admin := seedAdmin(t, db)
	otherAdmin := seedAdmin(t, db)
	hotel := seedHotel(t, db, admin)

	_, err := svc.AssignManager(admin, hotel.ID, otherAdmin.ID, models.AssignmentActive)
	require.Error(t, err)
	assert.Equal(t, 400, utils.HTTPStatus(err))

	_, err = svc.AssignManager(admin, hotel.ID, uuid.New(), models.AssignmentActive)
	require.Error(t, err)
	assert.Equal(t, 404, utils.HTTPStatus(err))
}
