package store

import (
	"carwash-backend/i18n"
	"carwash-backend/models"

	"github.com/google/uuid"
)

// Built-in service-type catalog. A user who has never configured service
// types gets these on first load, with names resolved in both languages.
// Prices are whole SAR.
var defaultCatalog = []struct {
	key        i18n.Key
	price      float64
	commission float64
}{
	{i18n.KeyExteriorWash, 30, 5},
	{i18n.KeyInteriorExteriorWash, 50, 8},
	{i18n.KeyFullWash, 70, 10},
	{i18n.KeyPolish, 150, 20},
	{i18n.KeyEngineWash, 40, 6},
}

func defaultServiceConfigs(userID uuid.UUID) []models.ServiceConfig {
	configs := make([]models.ServiceConfig, 0, len(defaultCatalog))
	for _, entry := range defaultCatalog {
		configs = append(configs, models.ServiceConfig{
			UserID:     userID,
			Name:       string(entry.key),
			NameAr:     i18n.T(i18n.Arabic, entry.key),
			NameEn:     i18n.T(i18n.English, entry.key),
			Price:      entry.price,
			Commission: entry.commission,
		})
	}
	return configs
}

// loadServiceConfigs refreshes the config cache. A user with zero configs is
// seeded with the default catalog and adopts the inserted rows: a one-time
// migration that is idempotent by emptiness.
func (s *Store) loadServiceConfigs() error {
	userID, ok := s.currentUserID()
	if !ok {
		return nil
	}

	configs, err := s.gw.ListServiceConfigs(userID)
	if err != nil {
		s.log.WithError(err).Error("loading service configs failed")
		s.notify(LevelError, i18n.KeyServiceTypeUpdateFailed)
		s.mu.Lock()
		s.serviceConfigs = nil
		s.mu.Unlock()
		return err
	}

	if len(configs) == 0 {
		seeded, err := s.gw.InsertServiceConfigs(defaultServiceConfigs(userID))
		if err != nil {
			s.log.WithError(err).Error("seeding service configs failed")
			s.notify(LevelError, i18n.KeyServiceTypeAddFailed)
			s.mu.Lock()
			s.serviceConfigs = nil
			s.mu.Unlock()
			return err
		}
		s.mu.Lock()
		s.serviceConfigs = seeded
		s.mu.Unlock()
		s.changed(CollectionServiceConfigs)
		s.notify(LevelInfo, i18n.KeyServiceTypeAdded)
		return nil
	}

	s.mu.Lock()
	s.serviceConfigs = configs
	s.mu.Unlock()
	s.changed(CollectionServiceConfigs)
	return nil
}
