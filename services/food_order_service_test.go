package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"
)

func newFoodService(t *testing.T) (*services.FoodOrderService, *services.GuestStayService, *gorm.DB, models.Caller, models.Hotel) {
	t.Helper()
	db := newTestDB(t)
	access := services.NewAccessService(db)
	foodSvc := services.NewFoodOrderService(db, access)
	staySvc := services.NewGuestStayService(db, access)
	admin := seedAdmin(t, db)
	hotel := seedHotel(t, db, admin)
	return foodSvc, staySvc, db, admin, hotel
}

func TestPriceLine_HalfPlate(t *testing.T) {
	half := money(50)
	menu := &models.Menu{Name: "Dal", HalfPlatePrice: &half, FullPlatePrice: money(90)}

	unit, total, err := services.PriceLine(menu, models.PortionHalf, 2)
	require.NoError(t, err)
	assert.True(t, unit.Equal(money(50)))
	assert.True(t, total.Equal(money(100)))
}

func TestPriceLine_HalfPlateUnavailable(t *testing.T) {
	menu := &models.Menu{Name: "Biryani", FullPlatePrice: money(250)}

	_, _, err := services.PriceLine(menu, models.PortionHalf, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "half plate not available for Biryani")
}

func TestPriceLine_RejectsZeroQuantity(t *testing.T) {
	menu := &models.Menu{Name: "Dal", FullPlatePrice: money(90)}
	_, _, err := services.PriceLine(menu, models.PortionFull, 0)
	require.Error(t, err)
	assert.Equal(t, 400, utils.HTTPStatus(err))
}

func TestAddFoodExpense_DalScenario(t *testing.T) {
	foodSvc, staySvc, db, admin, hotel := newFoodService(t)
	dal := seedMenu(t, db, admin, "Dal", floatPtr(50), 90)

	stay, err := staySvc.CreateStay(admin, basicStayInput(hotel, "Asha"))
	require.NoError(t, err)

	summary, err := foodSvc.AddFoodExpense(admin, stay.ID, []services.FoodLineInput{
		{MenuID: dal.ID, PortionType: models.PortionHalf, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "100.00", summary.GrandTotal)
	require.Len(t, summary.Orders, 1)
	assert.Equal(t, "Dal", summary.Orders[0].Name)
	assert.Equal(t, "50.00", summary.Orders[0].UnitPrice)
	assert.Equal(t, "100.00", summary.Orders[0].TotalPrice)

	var expense models.GuestExpense
	require.NoError(t, db.First(&expense, "booking_id = ?", stay.ID).Error)
	assert.Equal(t, models.ExpenseFood, expense.ExpenseType)
	assert.True(t, expense.Amount.Equal(money(100)))
}

func TestReplaceFoodExpense_RoundTrip(t *testing.T) {
	foodSvc, staySvc, db, admin, hotel := newFoodService(t)
	dal := seedMenu(t, db, admin, "Dal", floatPtr(50), 90)
	paneer := seedMenu(t, db, admin, "Paneer", nil, 180)

	stay, err := staySvc.CreateStay(admin, basicStayInput(hotel, "Asha"))
	require.NoError(t, err)

	created, err := foodSvc.AddFoodExpense(admin, stay.ID, []services.FoodLineInput{
		{MenuID: dal.ID, PortionType: models.PortionHalf, Quantity: 2},
	})
	require.NoError(t, err)
	expenseID := created.Orders[0].ExpenseID

	replaced, err := foodSvc.ReplaceFoodExpense(admin, expenseID, []services.FoodLineInput{
		{MenuID: paneer.ID, PortionType: models.PortionFull, Quantity: 1},
		{MenuID: dal.ID, PortionType: models.PortionFull, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "360.00", replaced.GrandTotal)

	fetched, err := foodSvc.FoodExpenseForDate(admin, stay.ID, nil)
	require.NoError(t, err)
	require.Len(t, fetched.Orders, 2)
	assert.Equal(t, "360.00", fetched.GrandTotal)
	names := []string{fetched.Orders[0].Name, fetched.Orders[1].Name}
	assert.ElementsMatch(t, []string{"Paneer", "Dal"}, names)

	// old line set is gone and the parent amount was recomputed
	var orderCount int64
	require.NoError(t, db.Model(&models.GuestFoodOrder{}).Where("guest_expense_id = ?", expenseID).Count(&orderCount).Error)
	assert.EqualValues(t, 2, orderCount)

	var expense models.GuestExpense
	require.NoError(t, db.First(&expense, "id = ?", expenseID).Error)
	assert.True(t, expense.Amount.Equal(money(360)))
}

func TestReplaceFoodExpense_RejectsNonFoodExpense(t *testing.T) {
	foodSvc, staySvc, db, admin, hotel := newFoodService(t)
	dal := seedMenu(t, db, admin, "Dal", floatPtr(50), 90)

	stay, err := staySvc.CreateStay(admin, basicStayInput(hotel, "Asha"))
	require.NoError(t, err)

	laundry := models.GuestExpense{
		BookingID:   stay.ID,
		ExpenseType: models.ExpenseLaundry,
		Amount:      money(70),
		ExpenseDate: utils.Today(),
	}
	require.NoError(t, db.Create(&laundry).Error)

	_, err = foodSvc.ReplaceFoodExpense(admin, laundry.ID, []services.FoodLineInput{
		{MenuID: dal.ID, PortionType: models.PortionFull, Quantity: 1},
	})
	require.Error(t, err)
	assert.Equal(t, 400, utils.HTTPStatus(err))
}

func TestFoodExpenseForDate_DefaultsToToday(t *testing.T) {
	foodSvc, staySvc, db, admin, hotel := newFoodService(t)
	dal := seedMenu(t, db, admin, "Dal", floatPtr(50), 90)

	stay, err := staySvc.CreateStay(admin, basicStayInput(hotel, "Asha"))
	require.NoError(t, err)

	_, err = foodSvc.AddFoodExpense(admin, stay.ID, []services.FoodLineInput{
		{MenuID: dal.ID, PortionType: models.PortionFull, Quantity: 1},
	})
	require.NoError(t, err)

	summary, err := foodSvc.FoodExpenseForDate(admin, stay.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, utils.FormatDate(utils.Today()), summary.Date)
	require.Len(t, summary.Orders, 1)
	assert.Equal(t, "90.00", summary.GrandTotal)
}
