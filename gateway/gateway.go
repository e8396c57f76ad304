// Package gateway is the data boundary of the app: table-level reads and
// writes scoped to one user, plus the auth sub-interface. The store never
// talks to the database directly, only through this interface.
package gateway

import (
	"errors"
	"time"

	"carwash-backend/models"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("record not found")
	ErrBadID              = errors.New("malformed id")
)

// Auth is the session sub-interface.
type Auth interface {
	SignUp(email, password string) (*models.User, error)
	SignIn(email, password string) (*models.User, error)
	// SignOut is best effort; callers tear their session down regardless of
	// the returned error.
	SignOut(userID uuid.UUID) error
	GetUser(userID uuid.UUID) (*models.User, error)
}

// Gateway exposes per-user collection access. All identifiers cross this
// boundary as strings even where the backing keys are numeric.
type Gateway interface {
	Auth

	ListAllServices(userID uuid.UUID) ([]models.ServiceRecord, error)
	ListServicesBetween(userID uuid.UUID, start, end time.Time) ([]models.ServiceRecord, error)
	InsertService(rec models.ServiceRecord) (*models.ServiceRecord, error)

	ListStaff(userID uuid.UUID) ([]models.Staff, error)
	InsertStaff(userID uuid.UUID, name, nameEn string) error
	DeleteStaff(userID uuid.UUID, id string) error

	ListServiceConfigs(userID uuid.UUID) ([]models.ServiceConfig, error)
	InsertServiceConfigs(configs []models.ServiceConfig) ([]models.ServiceConfig, error)
	UpdateServiceConfig(userID uuid.UUID, id string, cfg models.ServiceConfig) error
	DeleteServiceConfig(userID uuid.UUID, id string) error

	ListInventoryItems(userID uuid.UUID) ([]models.InventoryItem, error)
	InsertInventoryItem(item models.InventoryItem) error
	UpdateInventoryItem(userID uuid.UUID, id string, item models.InventoryItem) error
	DeleteInventoryItem(userID uuid.UUID, id string) error

	ListProductTypes(userID uuid.UUID) ([]models.ProductType, error)
	InsertProductType(pt models.ProductType) error
	UpdateProductType(userID uuid.UUID, id string, pt models.ProductType) error
	DeleteProductType(userID uuid.UUID, id string) error

	ListExpenses(userID uuid.UUID) ([]models.Expense, error)
	InsertExpense(userID uuid.UUID, description string, amount float64) error
	DeleteExpense(userID uuid.UUID, id string) error
}
