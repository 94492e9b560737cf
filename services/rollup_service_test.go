package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

func TestHotelDay_TotalsCoverWholeRelevantSet(t *testing.T) {
	db := newTestDB(t)
	access := services.NewAccessService(db)
	staySvc := services.NewGuestStayService(db, access)
	foodSvc := services.NewFoodOrderService(db, access)
	rollupSvc := services.NewRollupService(db, access, staySvc)
	admin := seedAdmin(t, db)
	hotel := seedHotel(t, db, admin)

	today := utils.Today()
	for i := 0; i < 3; i++ {
		_, err := staySvc.CreateStay(admin, services.CreateStayInput{
			HotelID:     hotel.ID,
			GuestName:   fmt.Sprintf("Guest %d", i),
			CheckinDate: today,
			CheckinTime: "12:00",
			Rent:        money(1000),
		})
		require.NoError(t, err)
	}

	dal := seedMenu(t, db, admin, "Dal", floatPtr(50), 90)
	var first models.GuestStay
	require.NoError(t, db.Order("serial_no ASC").First(&first).Error)
	_, err := foodSvc.AddFoodExpense(admin, first.ID, []services.FoodLineInput{
		{MenuID: dal.ID, PortionType: models.PortionFull, Quantity: 2},
	})
	require.NoError(t, err)

	// page of 2, but sales and pending must still cover all 3 stays
	report, total, err := rollupSvc.HotelDay(admin, hotel.ID, today, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, report.Stays, 2)
	assert.Equal(t, "3180.00", report.TodayTotalSales)
	assert.Equal(t, "3180.00", report.TotalPending)

	// page two holds the remaining stay, totals unchanged
	page2, _, err := rollupSvc.HotelDay(admin, hotel.ID, today, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Stays, 1)
	assert.Equal(t, "3180.00", page2.TodayTotalSales)
}

func TestHotelDay_ExcludesStaysCheckedOutEarlier(t *testing.T) {
	db := newTestDB(t)
	access := services.NewAccessService(db)
	staySvc := services.NewGuestStayService(db, access)
	rollupSvc := services.NewRollupService(db, access, staySvc)
	admin := seedAdmin(t, db)
	hotel := seedHotel(t, db, admin)

	today := utils.Today()
	yesterday := utils.DateOf(time.Now().AddDate(0, 0, -1))
	threeDaysAgo := utils.DateOf(time.Now().AddDate(0, 0, -3))

	// still in house
	_, err := staySvc.CreateStay(admin, services.CreateStayInput{
		HotelID: hotel.ID, GuestName: "Open", CheckinDate: yesterday, CheckinTime: "12:00", Rent: money(800),
	})
	require.NoError(t, err)

	// checking out today: still relevant
	leaving, err := staySvc.CreateStay(admin, services.CreateStayInput{
		HotelID: hotel.ID, GuestName: "Leaving", CheckinDate: yesterday, CheckinTime: "12:00", Rent: money(800),
	})
	require.NoError(t, err)
	checkoutTime := "11:00"
	_, err = staySvc.UpdateStay(admin, leaving.ID, services.UpdateStayInput{
		CheckoutDate: &today, CheckoutTime: &checkoutTime,
	})
	require.NoError(t, err)

	// checked out yesterday: no longer relevant
	gone, err := staySvc.CreateStay(admin, services.CreateStayInput{
		HotelID: hotel.ID, GuestName: "Gone", CheckinDate: threeDaysAgo, CheckinTime: "12:00", Rent: money(800),
	})
	require.NoError(t, err)
	_, err = staySvc.UpdateStay(admin, gone.ID, services.UpdateStayInput{
		CheckoutDate: &yesterday, CheckoutTime: &checkoutTime,
	})
	require.NoError(t, err)

	report, total, err := rollupSvc.HotelDay(admin, hotel.ID, today, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	names := make([]string, 0, len(report.Stays))
	for _, s := range report.Stays {
		names = append(names, s.Stay.GuestName)
	}
	assert.ElementsMatch(t, []string{"Open", "Leaving"}, names)
}

func TestHotelDay_ManagerNeedsActiveAssignment(t *testing.T) {
	db := newTestDB(t)
	access := services.NewAccessService(db)
	staySvc := services.NewGuestStayService(db, access)
	rollupSvc := services.NewRollupService(db, access, staySvc)
	admin := seedAdmin(t, db)
	manager := seedManager(t, db)
	hotel := seedHotel(t, db, admin)

	_, _, err := rollupSvc.HotelDay(manager, hotel.ID, utils.Today(), 1, 10)
	require.Error(t, err)
	assert.Equal(t, 403, utils.HTTPStatus(err))

	require.NoError(t, db.Create(&models.HotelAssignment{
		HotelID: hotel.ID, ManagerID: manager.ID, Status: models.AssignmentActive,
	}).Error)

	_, _, err = rollupSvc.HotelDay(manager, hotel.ID, utils.Today(), 1, 10)
	assert.NoError(t, err)
}
