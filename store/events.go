package store

import "carwash-backend/i18n"

// Event kinds pushed to subscribers. Notifications replace the SPA's toast
// layer; collection events let callers re-read the snapshot they care about.
const (
	EventNotification = "notification"
	EventCollection   = "collection"
	EventSession      = "session"
)

const (
	LevelInfo  = "info"
	LevelError = "error"
)

// Collection names as they appear in collection-change events.
const (
	CollectionServices       = "services"
	CollectionAllServices    = "allServices"
	CollectionStaff          = "staff"
	CollectionServiceConfigs = "serviceConfigs"
	CollectionInventoryItems = "inventoryItems"
	CollectionProductTypes   = "productTypes"
	CollectionExpenses       = "expenses"
)

type Event struct {
	Kind       string
	Level      string
	Message    i18n.Key
	Collection string
}
