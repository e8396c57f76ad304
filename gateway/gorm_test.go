package gateway

import (
	"fmt"
	"testing"
	"time"

	"carwash-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own named in-memory database so tests can
// run in parallel without sharing tables.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ServiceRecord{},
		&models.ServiceConfig{},
		&models.Staff{},
		&models.InventoryItem{},
		&models.ProductType{},
		&models.Expense{},
		&models.AlertLog{},
	))
	return db
}

func testGateway(t *testing.T) (*GormGateway, *models.User) {
	t.Helper()
	g := NewGormGateway(openTestDB(t))
	user, err := g.SignUp("owner@example.com", "password123")
	require.NoError(t, err)
	return g, user
}

func TestSignUpAndSignIn(t *testing.T) {
	g, created := testGateway(t)

	// Stored password is hashed, not the plaintext.
	assert.NotEqual(t, "password123", created.Password)

	user, err := g.SignIn("owner@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotNil(t, user.LastLogin)

	_, err = g.SignIn("owner@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = g.SignIn("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	g, _ := testGateway(t)

	_, err := g.SignUp("owner@example.com", "another-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetUser(t *testing.T) {
	g, created := testGateway(t)

	user, err := g.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, user.Email)

	_, err = g.GetUser(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServicesScopedAndOrdered(t *testing.T) {
	g, owner := testGateway(t)
	other, err := g.SignUp("other@example.com", "password123")
	require.NoError(t, err)

	base := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	for i, userID := range []uuid.UUID{owner.ID, owner.ID, other.ID} {
		_, err := g.InsertService(models.ServiceRecord{
			UserID:      userID,
			ServiceType: "exterior-wash",
			Price:       30,
			Timestamp:   base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	records, err := g.ListAllServices(owner.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first.
	assert.True(t, records[0].Timestamp.After(records[1].Timestamp))
	for _, rec := range records {
		assert.Equal(t, owner.ID, rec.UserID)
		assert.NotEqual(t, uuid.Nil, rec.ID)
	}
}

func TestListServicesBetween(t *testing.T) {
	g, owner := testGateway(t)

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	inWindow := day.Add(10 * time.Hour)
	outside := day.AddDate(0, 0, -1)
	for _, ts := range []time.Time{inWindow, outside} {
		_, err := g.InsertService(models.ServiceRecord{
			UserID: owner.ID, ServiceType: "polish", Price: 150, Timestamp: ts,
		})
		require.NoError(t, err)
	}

	records, err := g.ListServicesBetween(owner.ID, day, day.Add(24*time.Hour-time.Nanosecond))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, inWindow.Unix(), records[0].Timestamp.Unix())
}

func TestStaffLifecycle(t *testing.T) {
	g, owner := testGateway(t)

	require.NoError(t, g.InsertStaff(owner.ID, "أحمد", "Ahmed"))
	staff, err := g.ListStaff(owner.ID)
	require.NoError(t, err)
	require.Len(t, staff, 1)

	id := fmt.Sprintf("%d", staff[0].ID)

	// Another user cannot delete it.
	err = g.DeleteStaff(uuid.New(), id)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, g.DeleteStaff(owner.ID, id))
	staff, err = g.ListStaff(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, staff)
}

func TestMalformedIDs(t *testing.T) {
	g, owner := testGateway(t)

	assert.ErrorIs(t, g.DeleteStaff(owner.ID, "not-a-number"), ErrBadID)
	assert.ErrorIs(t, g.DeleteExpense(owner.ID, ""), ErrBadID)
	assert.ErrorIs(t, g.UpdateServiceConfig(owner.ID, "abc", models.ServiceConfig{}), ErrBadID)
}

func TestServiceConfigUpdate(t *testing.T) {
	g, owner := testGateway(t)

	inserted, err := g.InsertServiceConfigs([]models.ServiceConfig{
		{UserID: owner.ID, Name: "full-wash", NameEn: "Full Wash", Price: 70, Commission: 10},
	})
	require.NoError(t, err)
	require.Len(t, inserted, 1)
	require.NotZero(t, inserted[0].ID)

	id := fmt.Sprintf("%d", inserted[0].ID)
	err = g.UpdateServiceConfig(owner.ID, id, models.ServiceConfig{
		Name: "full-wash", NameEn: "Full Wash", Price: 80, Commission: 12,
	})
	require.NoError(t, err)

	configs, err := g.ListServiceConfigs(owner.ID)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, 80.0, configs[0].Price)
	assert.Equal(t, 12.0, configs[0].Commission)

	assert.ErrorIs(t, g.UpdateServiceConfig(owner.ID, "999", models.ServiceConfig{}), ErrNotFound)
}

func TestInventoryUpdateCanClearOptionalFields(t *testing.T) {
	g, owner := testGateway(t)

	purchased := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	lifespan := 30
	require.NoError(t, g.InsertInventoryItem(models.InventoryItem{
		UserID: owner.ID, Name: "Car Shampoo", Quantity: 5, Price: 25,
		PurchaseDate: &purchased, LifespanDays: &lifespan,
	}))

	items, err := g.ListInventoryItems(owner.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].PurchaseDate)

	id := fmt.Sprintf("%d", items[0].ID)
	require.NoError(t, g.UpdateInventoryItem(owner.ID, id, models.InventoryItem{
		Name: "Car Shampoo", Quantity: 3, Price: 25,
	}))

	items, err = g.ListInventoryItems(owner.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Nil(t, items[0].PurchaseDate)
	assert.Nil(t, items[0].LifespanDays)
}

func TestProductTypeLifecycle(t *testing.T) {
	g, owner := testGateway(t)

	require.NoError(t, g.InsertProductType(models.ProductType{
		UserID: owner.ID, NameEn: "Shampoo", NameAr: "شامبو",
	}))

	types, err := g.ListProductTypes(owner.ID)
	require.NoError(t, err)
	require.Len(t, types, 1)

	id := fmt.Sprintf("%d", types[0].ID)
	require.NoError(t, g.UpdateProductType(owner.ID, id, models.ProductType{
		NameEn: "Wax", NameAr: "شمع",
	}))

	types, err = g.ListProductTypes(owner.ID)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Wax", types[0].NameEn)

	require.NoError(t, g.DeleteProductType(owner.ID, id))
	types, err = g.ListProductTypes(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestExpenseDateIsStampedServerSide(t *testing.T) {
	g, owner := testGateway(t)

	before := time.Now().Add(-time.Second)
	require.NoError(t, g.InsertExpense(owner.ID, "Water refill", 200))

	expenses, err := g.ListExpenses(owner.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Water refill", expenses[0].Description)
	assert.True(t, expenses[0].Date.After(before))

	require.NoError(t, g.DeleteExpense(owner.ID, fmt.Sprintf("%d", expenses[0].ID)))
}
