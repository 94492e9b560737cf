package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-pms-backend/config"
	"hotel-pms-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB) models.Caller {
	t.Helper()
	user := models.User{Name: "Admin", Username: "admin-" + uuid.NewString()[:8], Password: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&user).Error)
	return models.Caller{ID: user.ID, Role: models.RoleAdmin}
}

func seedManager(t *testing.T, db *gorm.DB) models.Caller {
	t.Helper()
	user := models.User{Name: "Manager", Username: "manager-" + uuid.NewString()[:8], Password: "x", Role: models.RoleManager}
	require.NoError(t, db.Create(&user).Error)
	return models.Caller{ID: user.ID, Role: models.RoleManager}
}

func seedHotel(t *testing.T, db *gorm.DB, createdBy models.Caller) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: "Blue Lagoon", Address: "12 Shore Rd", Phone: "555-0101", TotalRooms: 20, CreatedByID: createdBy.ID}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func seedPaymentMode(t *testing.T, db *gorm.DB, createdBy models.Caller) models.PaymentMode {
	t.Helper()
	mode := models.PaymentMode{PaymentMode: "cash", CreatedByID: createdBy.ID}
	require.NoError(t, db.Create(&mode).Error)
	return mode
}

func seedMenu(t *testing.T, db *gorm.DB, createdBy models.Caller, name string, half *float64, full float64) models.Menu {
	t.Helper()
	menu := models.Menu{
		Name:           name,
		FullPlatePrice: decimal.NewFromFloat(full),
		CreatedByID:    createdBy.ID,
	}
	if half != nil {
		h := decimal.NewFromFloat(*half)
		menu.HalfPlatePrice = &h
	}
	require.NoError(t, db.Create(&menu).Error)
	return menu
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func floatPtr(v float64) *float64 { return &v }
