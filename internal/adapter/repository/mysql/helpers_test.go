package mysql

import (
	"context"
	"testing"
	"time"

	"esep-backend/internal/domain/category"
	"esep-backend/internal/domain/panchayath"
	"esep-backend/internal/domain/registration"
	dbinfra "esep-backend/internal/infrastructure/db"
	"esep-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// a second connection would see a different empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(dbinfra.Models()...); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string, fee int64) *category.Category {
	t.Helper()
	c := &category.Category{
		NameEnglish:   name,
		NameMalayalam: name + " ml",
		ActualFee:     decimal.NewNullDecimal(decimal.NewFromInt(fee)),
		IsActive:      true,
	}
	if err := NewCategoryRepository(db).Create(context.Background(), c); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}

func seedPanchayath(t *testing.T, db *gorm.DB, name string) *panchayath.Panchayath {
	t.Helper()
	p := &panchayath.Panchayath{Name: name, District: "Malappuram", IsActive: true}
	if err := NewPanchayathRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("seed panchayath: %v", err)
	}
	return p
}

func makeRegistration(name, mobile, categoryID string, created time.Time) *registration.Registration {
	return &registration.Registration{
		CustomerID:   id.NewCustomerID(mobile),
		FullName:     name,
		MobileNumber: mobile,
		Address:      "House 12, Main Road",
		Ward:         "7",
		CategoryID:   categoryID,
		Fee:          decimal.NewFromInt(100),
		Status:       registration.StatusPending,
		CreatedAt:    created.UTC(),
	}
}
