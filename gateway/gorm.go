package gateway

import (
	"errors"
	"strconv"
	"time"

	"carwash-backend/i18n"
	"carwash-backend/models"
	"carwash-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGateway implements Gateway on top of a gorm connection. This is the
// self-hosted replacement for the hosted row-level-CRUD service the app used
// to talk to.
type GormGateway struct {
	db *gorm.DB
}

func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{db: db}
}

// parseNumericID converts the textual id used across the boundary back to the
// numeric storage key. Staff, configs, inventory, product types and expenses
// keep numeric keys from the migrated schema.
func parseNumericID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, ErrBadID
	}
	return n, nil
}

// ---- auth ----

func (g *GormGateway) SignUp(email, password string) (*models.User, error) {
	var existing models.User
	result := g.db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	user := models.User{
		Email:    email,
		Password: password, // hashed in BeforeCreate hook
		Language: string(i18n.DefaultLanguage),
	}
	if err := g.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *GormGateway) SignIn(email, password string) (*models.User, error) {
	var user models.User
	if err := g.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	g.db.Model(&user).Update("last_login", &now)
	return &user, nil
}

func (g *GormGateway) SignOut(userID uuid.UUID) error {
	// Sessions are stateless JWTs; nothing to revoke server-side.
	return nil
}

func (g *GormGateway) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := g.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ---- services ----

func (g *GormGateway) ListAllServices(userID uuid.UUID) ([]models.ServiceRecord, error) {
	var records []models.ServiceRecord
	err := g.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&records).Error
	return records, err
}

func (g *GormGateway) ListServicesBetween(userID uuid.UUID, start, end time.Time) ([]models.ServiceRecord, error) {
	var records []models.ServiceRecord
	err := g.db.Where("user_id = ? AND timestamp BETWEEN ? AND ?", userID, start, end).
		Order("timestamp DESC").
		Find(&records).Error
	return records, err
}

func (g *GormGateway) InsertService(rec models.ServiceRecord) (*models.ServiceRecord, error) {
	if err := g.db.Create(&rec).Error; err != nil {
		return nil, err
	}
	// Echo the stored row back so the caller can adopt it as-is.
	return &rec, nil
}

// ---- staff ----

func (g *GormGateway) ListStaff(userID uuid.UUID) ([]models.Staff, error) {
	var staff []models.Staff
	err := g.db.Where("user_id = ?", userID).Order("name").Find(&staff).Error
	return staff, err
}

func (g *GormGateway) InsertStaff(userID uuid.UUID, name, nameEn string) error {
	return g.db.Create(&models.Staff{UserID: userID, Name: name, NameEn: nameEn}).Error
}

func (g *GormGateway) DeleteStaff(userID uuid.UUID, id string) error {
	key, err := parseNumericID(id)
	if err != nil {
		return err
	}
	return g.deleteScoped(&models.Staff{}, userID, key)
}

// ---- service configs ----

func (g *GormGateway) ListServiceConfigs(userID uuid.UUID) ([]models.ServiceConfig, error) {
	var configs []models.ServiceConfig
	err := g.db.Where("user_id = ?", userID).Order("name").Find(&configs).Error
	return configs, err
}

func (g *GormGateway) InsertServiceConfigs(configs []models.ServiceConfig) ([]models.ServiceConfig, error) {
	if len(configs) == 0 {
		return nil, nil
	}
	if err := g.db.Create(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (g *GormGateway) UpdateServiceConfig(userID uuid.UUID, id string, cfg models.ServiceConfig) error {
	key, err := parseNumericID(id)
	if err != nil {
		return err
	}
	result := g.db.Model(&models.ServiceConfig{}).
		Where("user_id = ? AND id = ?", userID, key).
		Updates(map[string]interface{}{
			"name":       cfg.Name,
			"name_ar":    cfg.NameAr,
			"name_en":    cfg.NameEn,
			"price":      cfg.Price,
			"commission": cfg.Commission,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormGateway) DeleteServiceConfig(userID uuid.UUID, id string) error {
	key, err := parseNumericID(id)
	if err != nil {
		return err
	}
	return g.deleteScoped(&models.ServiceConfig{}, userID, key)
}

// ---- inventory ----

func (g *GormGateway) ListInventoryItems(userID uuid.UUID) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := g.db.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

func (g *GormGateway) InsertInventoryItem(item models.InventoryItem) error {
	return g.db.Create(&item).Error
}

func (g *GormGateway) UpdateInventoryItem(userID uuid.UUID, id string, item models.InventoryItem) error {
	key, err := parseNumericID(id)
	if err != nil {
		return err
	}
	result := g.db.Model(&models.InventoryItem{}).
		Where("user_id = ? AND id = ?", userID, key).
		Updates(map[string]interface{}{
			"name":            item.Name,
			"product_type_id": item.ProductTypeID,
			"quantity":        item.Quantity,
			"price":           item.Price,
			"purchase_date":   item.PurchaseDate,
			"lifespan_days":   item.LifespanDays,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormGateway) DeleteInventoryItem(userID uuid.UUID, id string) error {
	key, err := parseNumericID(id)
	if err != nil {
		return err
	}
	return g.deleteScoped(&models.InventoryItem{}, userID, key)
}

// ---- product types ----

func (g *GormGateway) ListProductTypes(userID uuid.UUID) ([]models.ProductType, error) {
	var types []models.ProductType
	err := g.db.Where("user_id = ?", userID).Order("name_en").Find(&types).Error
	return types, err
}

func (g *GormGateway) InsertProductType(pt models.ProductType) error {
	return g.db.Create(&pt).Error
}

func (g *GormGateway) UpdateProductType(userID uuid.UUID, id string, pt models.ProductType) error {
	key, err := parseNumericID(id)
	if err != nil {
		return err
	}
	result := g.db.Model(&models.ProductType{}).
		Where("user_id = ? AND id = ?", userID, key).
		Updates(map[string]interface{}{
			"name_en": pt.NameEn,
			"name_ar": pt.NameAr,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormGateway) DeleteProductType(userID uuid.UUID, id string) error {
	key, err := parseNumericID(id)
	if err != nil {
		return err
	}
	return g.deleteScoped(&models.ProductType{}, userID, key)
}

// ---- expenses ----

func (g *GormGateway) ListExpenses(userID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	err := g.db.Where("user_id = ?", userID).Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (g *GormGateway) InsertExpense(userID uuid.UUID, description string, amount float64) error {
	// Date is stamped here, never taken from the caller.
	return g.db.Create(&models.Expense{
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Date:        time.Now(),
	}).Error
}

func (g *GormGateway) DeleteExpense(userID uuid.UUID, id string) error {
	key, err := parseNumericID(id)
	if err != nil {
		return err
	}
	return g.deleteScoped(&models.Expense{}, userID, key)
}

func (g *GormGateway) deleteScoped(model interface{}, userID uuid.UUID, key int64) error {
	result := g.db.Where("user_id = ? AND id = ?", userID, key).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
