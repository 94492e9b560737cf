package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-pms-backend/models"
	"hotel-pms-backend/utils"
)

// FoodOrderService translates itemized menu lines into a priced guest
// expense and keeps the parent amount equal to the sum of its lines.
type FoodOrderService struct {
	DB     *gorm.DB
	Access *AccessService
}

func NewFoodOrderService(db *gorm.DB, access *AccessService) *FoodOrderService {
	return &FoodOrderService{DB: db, Access: access}
}

type FoodLineInput struct {
	MenuID      uuid.UUID
	PortionType models.PortionType
	Quantity    int
}

// FoodOrderLine is the API shape of one priced line; monetary fields are
// fixed 2-decimal strings.
type FoodOrderLine struct {
	FoodOrderID uuid.UUID          `json:"food_order_id"`
	ExpenseID   uuid.UUID          `json:"expense_id"`
	Name        string             `json:"name"`
	Quantity    int                `json:"quantity"`
	PortionType models.PortionType `json:"portion_type"`
	UnitPrice   string             `json:"unit_price"`
	TotalPrice  string             `json:"total_price"`
}

type FoodOrderSummary struct {
	Date       string          `json:"date"`
	Orders     []FoodOrderLine `json:"orders"`
	GrandTotal string          `json:"grand_total"`
}

// PriceLine resolves the unit price for a portion of a menu item. A half
// portion is only valid when the item carries a half-plate price.
func PriceLine(menu *models.Menu, portion models.PortionType, quantity int) (unitPrice, total decimal.Decimal, err error) {
	if quantity < 1 {
		return decimal.Zero, decimal.Zero, utils.ValidationError("quantity must be at least 1")
	}
	switch portion {
	case models.PortionHalf:
		if menu.HalfPlatePrice == nil {
			return decimal.Zero, decimal.Zero, utils.ValidationError("half plate not available for %s", menu.Name)
		}
		unitPrice = *menu.HalfPlatePrice
	case models.PortionFull:
		unitPrice = menu.FullPlatePrice
	default:
		return decimal.Zero, decimal.Zero, utils.ValidationError("invalid portion type %q", portion)
	}
	return unitPrice, unitPrice.Mul(decimal.NewFromInt(int64(quantity))), nil
}

type pricedLine struct {
	menu      models.Menu
	portion   models.PortionType
	quantity  int
	unitPrice decimal.Decimal
	total     decimal.Decimal
}

func (s *FoodOrderService) priceLines(lines []FoodLineInput) ([]pricedLine, decimal.Decimal, error) {
	if len(lines) == 0 {
		return nil, decimal.Zero, utils.ValidationError("at least one food line is required")
	}
	priced := make([]pricedLine, 0, len(lines))
	grand := decimal.Zero
	for _, line := range lines {
		var menu models.Menu
		if err := s.DB.First(&menu, "id = ?", line.MenuID).Error; err != nil {
			return nil, decimal.Zero, utils.WrapDBError(err, "menu")
		}
		unitPrice, total, err := PriceLine(&menu, line.PortionType, line.Quantity)
		if err != nil {
			return nil, decimal.Zero, err
		}
		priced = append(priced, pricedLine{
			menu:      menu,
			portion:   line.PortionType,
			quantity:  line.Quantity,
			unitPrice: unitPrice,
			total:     total,
		})
		grand = grand.Add(total)
	}
	return priced, grand, nil
}

// AddFoodExpense creates one food-type GuestExpense plus one GuestFoodOrder
// row per line, atomically, and returns the formatted order list.
func (s *FoodOrderService) AddFoodExpense(caller models.Caller, bookingID uuid.UUID, lines []FoodLineInput) (*FoodOrderSummary, error) {
	var stay models.GuestStay
	if err := s.DB.First(&stay, "id = ?", bookingID).Error; err != nil {
		return nil, utils.WrapDBError(err, "guest stay")
	}
	if err := s.Access.Authorize(caller, stay.HotelID); err != nil {
		return nil, err
	}

	priced, grand, err := s.priceLines(lines)
	if err != nil {
		return nil, err
	}

	day := utils.Today()
	expense := models.GuestExpense{
		BookingID:   stay.ID,
		ExpenseType: models.ExpenseFood,
		Amount:      grand,
		ExpenseDate: day,
	}
	orders := make([]models.GuestFoodOrder, 0, len(priced))

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&expense).Error; err != nil {
			return utils.WrapDBError(err, "guest expense")
		}
		for _, line := range priced {
			order := models.GuestFoodOrder{
				GuestExpenseID: expense.ID,
				MenuID:         line.menu.ID,
				PortionType:    line.portion,
				Quantity:       line.quantity,
				UnitPrice:      line.unitPrice,
			}
			if err := tx.Create(&order).Error; err != nil {
				return utils.WrapDBError(err, "guest food order")
			}
			orders = append(orders, order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return formatSummary(day, expense.ID, priced, orders, grand), nil
}

// ReplaceFoodExpense re-prices the expense from scratch: prior line items
// are deleted, the new set is inserted, and the parent amount becomes the
// new sum, all in one transaction.
func (s *FoodOrderService) ReplaceFoodExpense(caller models.Caller, expenseID uuid.UUID, lines []FoodLineInput) (*FoodOrderSummary, error) {
	var expense models.GuestExpense
	if err := s.DB.First(&expense, "id = ?", expenseID).Error; err != nil {
		return nil, utils.WrapDBError(err, "guest expense")
	}
	if expense.ExpenseType != models.ExpenseFood {
		return nil, utils.ValidationError("invalid expense type %q: food orders can only be attached to a food expense", expense.ExpenseType)
	}

	var stay models.GuestStay
	if err := s.DB.First(&stay, "id = ?", expense.BookingID).Error; err != nil {
		return nil, utils.WrapDBError(err, "guest stay")
	}
	if err := s.Access.Authorize(caller, stay.HotelID); err != nil {
		return nil, err
	}

	priced, grand, err := s.priceLines(lines)
	if err != nil {
		return nil, err
	}

	orders := make([]models.GuestFoodOrder, 0, len(priced))
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guest_expense_id = ?", expense.ID).
			Delete(&models.GuestFoodOrder{}).Error; err != nil {
			return utils.InternalError(err)
		}
		for _, line := range priced {
			order := models.GuestFoodOrder{
				GuestExpenseID: expense.ID,
				MenuID:         line.menu.ID,
				PortionType:    line.portion,
				Quantity:       line.quantity,
				UnitPrice:      line.unitPrice,
			}
			if err := tx.Create(&order).Error; err != nil {
				return utils.WrapDBError(err, "guest food order")
			}
			orders = append(orders, order)
		}
		expense.Amount = grand
		if err := tx.Save(&expense).Error; err != nil {
			return utils.WrapDBError(err, "guest expense")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return formatSummary(expense.ExpenseDate, expense.ID, priced, orders, grand), nil
}

// FoodExpenseForDate lists a stay's food orders for one calendar day,
// defaulting to today.
func (s *FoodOrderService) FoodExpenseForDate(caller models.Caller, bookingID uuid.UUID, date *datatypes.Date) (*FoodOrderSummary, error) {
	var stay models.GuestStay
	if err := s.DB.First(&stay, "id = ?", bookingID).Error; err != nil {
		return nil, utils.WrapDBError(err, "guest stay")
	}
	if err := s.Access.Authorize(caller, stay.HotelID); err != nil {
		return nil, err
	}

	day := utils.Today()
	if date != nil {
		day = *date
	}

	var expenses []models.GuestExpense
	err := s.DB.Where("booking_id = ? AND expense_type = ? AND expense_date = ?",
		stay.ID, models.ExpenseFood, day).Find(&expenses).Error
	if err != nil {
		return nil, utils.InternalError(err)
	}

	summary := &FoodOrderSummary{Date: utils.FormatDate(day), Orders: []FoodOrderLine{}}
	grand := decimal.Zero
	for _, expense := range expenses {
		var orders []models.GuestFoodOrder
		if err := s.DB.Preload("Menu").
			Where("guest_expense_id = ?", expense.ID).Find(&orders).Error; err != nil {
			return nil, utils.InternalError(err)
		}
		for _, order := range orders {
			total := order.UnitPrice.Mul(decimal.NewFromInt(int64(order.Quantity)))
			summary.Orders = append(summary.Orders, FoodOrderLine{
				FoodOrderID: order.ID,
				ExpenseID:   expense.ID,
				Name:        order.Menu.Name,
				Quantity:    order.Quantity,
				PortionType: order.PortionType,
				UnitPrice:   utils.FormatAmount(order.UnitPrice),
				TotalPrice:  utils.FormatAmount(total),
			})
			grand = grand.Add(total)
		}
	}
	summary.GrandTotal = utils.FormatAmount(grand)
	return summary, nil
}

func formatSummary(day datatypes.Date, expenseID uuid.UUID, priced []pricedLine, orders []models.GuestFoodOrder, grand decimal.Decimal) *FoodOrderSummary {
	summary := &FoodOrderSummary{
		Date:       utils.FormatDate(day),
		Orders:     make([]FoodOrderLine, 0, len(priced)),
		GrandTotal: utils.FormatAmount(grand),
	}
	for i, line := range priced {
		summary.Orders = append(summary.Orders, FoodOrderLine{
			FoodOrderID: orders[i].ID,
			ExpenseID:   expenseID,
			Name:        line.menu.Name,
			Quantity:    line.quantity,
			PortionType: line.portion,
			UnitPrice:   utils.FormatAmount(line.unitPrice),
			TotalPrice:  utils.FormatAmount(line.total),
		})
	}
	return summary
}
