// Package store is the single source of truth for one user's session: the
// cached collections, the language, and the loading/initialized flags. Every
// write goes through the gateway and then refreshes the owning collection
// wholesale; the one exception is AddService, which adopts the insert echo
// without a re-fetch. Subscribers get explicit change events instead of the
// ambient re-render the old client relied on.
package store

import (
	"sort"
	"sync"
	"time"

	"carwash-backend/gateway"
	"carwash-backend/i18n"
	"carwash-backend/models"
	"carwash-backend/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Store struct {
	gw  gateway.Gateway
	log *logrus.Entry
	now func() time.Time

	mu             sync.RWMutex
	user           *models.User
	language       i18n.Language
	services       []models.ServiceRecord
	allServices    []models.ServiceRecord
	staff          []models.Staff
	serviceConfigs []models.ServiceConfig
	inventoryItems []models.InventoryItem
	productTypes   []models.ProductType
	expenses       []models.Expense
	loading        bool
	initialized    bool

	subMu    sync.Mutex
	subs     []func(Event)
	lastNote *Notification
}

// Notification is the durable face of a notification event: the toast the
// old client would have shown.
type Notification struct {
	Level   string    `json:"level"`
	Message i18n.Key  `json:"message"`
	At      time.Time `json:"at"`
}

func New(gw gateway.Gateway, log *logrus.Entry) *Store {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Store{
		gw:       gw,
		log:      log,
		now:      time.Now,
		language: i18n.DefaultLanguage,
	}
}

// Subscribe registers an observer for store events. There is no unsubscribe;
// stores live as long as the session they belong to.
func (s *Store) Subscribe(fn func(Event)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) emit(ev Event) {
	s.subMu.Lock()
	subs := make([]func(Event), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(ev)
	}
}

func (s *Store) notify(level string, key i18n.Key) {
	s.subMu.Lock()
	s.lastNote = &Notification{Level: level, Message: key, At: s.now()}
	s.subMu.Unlock()
	s.emit(Event{Kind: EventNotification, Level: level, Message: key})
}

// LastNotification returns the most recent notification, or nil.
func (s *Store) LastNotification() *Notification {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return s.lastNote
}

func (s *Store) changed(collection string) {
	s.emit(Event{Kind: EventCollection, Collection: collection})
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// ---- flags and snapshots ----

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) Language() i18n.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage switches the session language; unknown tags are ignored.
func (s *Store) SetLanguage(lang i18n.Language) {
	if !i18n.Supported(lang) {
		return
	}
	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()
	s.emit(Event{Kind: EventSession})
}

func (s *Store) Services() []models.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ServiceRecord(nil), s.services...)
}

func (s *Store) AllServices() []models.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ServiceRecord(nil), s.allServices...)
}

func (s *Store) Staff() []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Staff(nil), s.staff...)
}

func (s *Store) ServiceConfigs() []models.ServiceConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ServiceConfig(nil), s.serviceConfigs...)
}

func (s *Store) InventoryItems() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.InventoryItem(nil), s.inventoryItems...)
}

func (s *Store) ProductTypes() []models.ProductType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ProductType(nil), s.productTypes...)
}

func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Expense(nil), s.expenses...)
}

// ---- auth state machine ----

// Login signs in through the gateway. Failures surface as a notification,
// never as an error to the caller; success is observed through the session
// becoming populated.
func (s *Store) Login(email, password string) {
	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.gw.SignIn(email, password)
	if err != nil {
		s.log.WithError(err).Warn("login failed")
		s.notify(LevelError, i18n.KeyLoginFailed)
		return
	}
	s.onAuthenticated(user)
}

// SignUp creates the account. It does not establish a session; the caller
// logs in afterwards.
func (s *Store) SignUp(email, password string) {
	s.setLoading(true)
	defer s.setLoading(false)

	if _, err := s.gw.SignUp(email, password); err != nil {
		s.log.WithError(err).Warn("signup failed")
		s.notify(LevelError, i18n.KeySignupFailed)
		return
	}
	s.notify(LevelInfo, i18n.KeySignupSuccess)
}

// Logout tears the session down. The remote sign-out is best effort: every
// cached collection is cleared whether or not it succeeds.
func (s *Store) Logout() {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.RLock()
	user := s.user
	s.mu.RUnlock()

	if user != nil {
		if err := s.gw.SignOut(user.ID); err != nil {
			s.log.WithError(err).Warn("remote sign-out failed")
		}
	}

	s.mu.Lock()
	s.user = nil
	s.services = nil
	s.allServices = nil
	s.staff = nil
	s.serviceConfigs = nil
	s.inventoryItems = nil
	s.productTypes = nil
	s.expenses = nil
	s.mu.Unlock()
	s.emit(Event{Kind: EventSession})
}

// onAuthenticated is the unauthenticated -> authenticated transition: adopt
// the user, run the initial load, then mark the store initialized whatever
// the loads did.
func (s *Store) onAuthenticated(user *models.User) {
	s.mu.Lock()
	s.user = user
	if i18n.Supported(i18n.Language(user.Language)) {
		s.language = i18n.Language(user.Language)
	}
	s.mu.Unlock()

	s.LoadInitialData(user)

	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()
	s.emit(Event{Kind: EventSession})
}

// ---- loads ----

// LoadInitialData loads every collection concurrently. Each sub-load catches
// its own error and resets its collection to empty, so one failing table
// never blanks the rest; a single aggregate notification is shown when
// anything failed.
func (s *Store) LoadInitialData(user *models.User) {
	s.setLoading(true)
	defer s.setLoading(false)

	loaders := []func() error{
		s.loadStaff,
		s.loadServiceConfigs,
		s.loadInventoryItems,
		s.loadProductTypes,
		s.loadExpenses,
		s.loadTodayServices,
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(loaders))
	for _, load := range loaders {
		wg.Add(1)
		go func(load func() error) {
			defer wg.Done()
			if err := load(); err != nil {
				errs <- err
			}
		}(load)
	}
	wg.Wait()
	close(errs)

	if len(errs) > 0 {
		s.notify(LevelError, i18n.KeyInitialLoadFailed)
	}
}

// LoadAllServices pulls the user's full service history, newest first, and
// recomputes the "today" subset from it client-side.
func (s *Store) LoadAllServices() {
	s.mu.RLock()
	user := s.user
	s.mu.RUnlock()
	if user == nil {
		return
	}

	s.setLoading(true)
	defer s.setLoading(false)

	records, err := s.gw.ListAllServices(user.ID)
	if err != nil {
		s.log.WithError(err).Error("loading all services failed")
		s.notify(LevelError, i18n.KeyServicesLoadFailed)
		s.mu.Lock()
		s.allServices = nil
		s.mu.Unlock()
		return
	}

	today := filterByDay(records, s.now())
	s.mu.Lock()
	s.allServices = records
	s.services = today
	s.mu.Unlock()
	s.changed(CollectionAllServices)
	s.changed(CollectionServices)
}

// LoadServicesForDate is a pure client-side filter of the allServices cache
// by calendar day, sorted newest first. It never hits the gateway, so it
// yields nothing until LoadAllServices has run; the caller owns that
// ordering.
func (s *Store) LoadServicesForDate(date time.Time) []models.ServiceRecord {
	s.mu.RLock()
	all := append([]models.ServiceRecord(nil), s.allServices...)
	s.mu.RUnlock()

	daily := filterByDay(all, date)
	s.mu.Lock()
	s.services = daily
	s.mu.Unlock()
	s.changed(CollectionServices)
	return daily
}

// AddService stamps the timestamp, inserts, and adopts the echoed row into
// the caches without a re-fetch. This is the only optimistic write path.
func (s *Store) AddService(rec models.ServiceRecord) {
	s.mu.RLock()
	user := s.user
	s.mu.RUnlock()
	if user == nil {
		return
	}

	s.setLoading(true)
	defer s.setLoading(false)

	rec.UserID = user.ID
	rec.Timestamp = s.now()

	saved, err := s.gw.InsertService(rec)
	if err != nil {
		s.log.WithError(err).Error("saving service failed")
		s.notify(LevelError, i18n.KeyServiceSaveFailed)
		return
	}

	s.mu.Lock()
	s.allServices = append([]models.ServiceRecord{*saved}, s.allServices...)
	if utils.SameDay(saved.Timestamp, s.now()) {
		s.services = append([]models.ServiceRecord{*saved}, s.services...)
		sortByTimestampDesc(s.services)
	}
	s.mu.Unlock()
	s.changed(CollectionAllServices)
	s.changed(CollectionServices)
	s.notify(LevelInfo, i18n.KeyServiceSaved)
}

// ---- per-collection loaders ----

func (s *Store) currentUserID() (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return uuid.Nil, false
	}
	return s.user.ID, true
}

func (s *Store) loadStaff() error {
	userID, ok := s.currentUserID()
	if !ok {
		return nil
	}
	staff, err := s.gw.ListStaff(userID)
	if err != nil {
		s.log.WithError(err).Error("loading staff failed")
		s.mu.Lock()
		s.staff = nil
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.staff = staff
	s.mu.Unlock()
	s.changed(CollectionStaff)
	return nil
}

func (s *Store) loadInventoryItems() error {
	userID, ok := s.currentUserID()
	if !ok {
		return nil
	}
	items, err := s.gw.ListInventoryItems(userID)
	if err != nil {
		s.log.WithError(err).Error("loading inventory failed")
		s.mu.Lock()
		s.inventoryItems = nil
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.inventoryItems = items
	s.mu.Unlock()
	s.changed(CollectionInventoryItems)
	return nil
}

func (s *Store) loadProductTypes() error {
	userID, ok := s.currentUserID()
	if !ok {
		return nil
	}
	types, err := s.gw.ListProductTypes(userID)
	if err != nil {
		s.log.WithError(err).Error("loading product types failed")
		s.mu.Lock()
		s.productTypes = nil
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.productTypes = types
	s.mu.Unlock()
	s.changed(CollectionProductTypes)
	return nil
}

func (s *Store) loadExpenses() error {
	userID, ok := s.currentUserID()
	if !ok {
		return nil
	}
	expenses, err := s.gw.ListExpenses(userID)
	if err != nil {
		s.log.WithError(err).Error("loading expenses failed")
		s.mu.Lock()
		s.expenses = nil
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.expenses = expenses
	s.mu.Unlock()
	s.changed(CollectionExpenses)
	return nil
}

func (s *Store) loadTodayServices() error {
	userID, ok := s.currentUserID()
	if !ok {
		return nil
	}
	now := s.now()
	records, err := s.gw.ListServicesBetween(userID, utils.BeginningOfDay(now), utils.EndOfDay(now))
	if err != nil {
		s.log.WithError(err).Error("loading today's services failed")
		s.mu.Lock()
		s.services = nil
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.services = records
	s.mu.Unlock()
	s.changed(CollectionServices)
	return nil
}

// ---- staff ----

func (s *Store) AddStaff(name, nameEn string) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.InsertStaff(userID, name, nameEn); err != nil {
		s.log.WithError(err).Error("adding staff failed")
		s.notify(LevelError, i18n.KeyStaffAddFailed)
		return
	}
	_ = s.loadStaff()
	s.notify(LevelInfo, i18n.KeyStaffAdded)
}

func (s *Store) RemoveStaff(id string) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.DeleteStaff(userID, id); err != nil {
		s.log.WithError(err).Error("removing staff failed")
		s.notify(LevelError, i18n.KeyStaffRemoveFailed)
		return
	}
	_ = s.loadStaff()
	s.notify(LevelInfo, i18n.KeyStaffRemoved)
}

// ---- service configs ----

func (s *Store) AddServiceConfig(cfg models.ServiceConfig) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	cfg.UserID = userID
	if _, err := s.gw.InsertServiceConfigs([]models.ServiceConfig{cfg}); err != nil {
		s.log.WithError(err).Error("adding service config failed")
		s.notify(LevelError, i18n.KeyServiceTypeAddFailed)
		return
	}
	_ = s.loadServiceConfigs()
	s.notify(LevelInfo, i18n.KeyServiceTypeAdded)
}

func (s *Store) UpdateServiceConfig(id string, cfg models.ServiceConfig) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.UpdateServiceConfig(userID, id, cfg); err != nil {
		s.log.WithError(err).Error("updating service config failed")
		s.notify(LevelError, i18n.KeyServiceTypeUpdateFailed)
		return
	}
	_ = s.loadServiceConfigs()
	s.notify(LevelInfo, i18n.KeyServiceTypeUpdated)
}

func (s *Store) RemoveServiceConfig(id string) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.DeleteServiceConfig(userID, id); err != nil {
		s.log.WithError(err).Error("removing service config failed")
		s.notify(LevelError, i18n.KeyServiceTypeRemoveFailed)
		return
	}
	_ = s.loadServiceConfigs()
	s.notify(LevelInfo, i18n.KeyServiceTypeRemoved)
}

// ---- inventory ----

func (s *Store) AddInventoryItem(item models.InventoryItem) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	item.UserID = userID
	if err := s.gw.InsertInventoryItem(item); err != nil {
		s.log.WithError(err).Error("adding inventory item failed")
		s.notify(LevelError, i18n.KeyInventoryItemAddFailed)
		return
	}
	_ = s.loadInventoryItems()
	s.notify(LevelInfo, i18n.KeyInventoryItemAdded)
}

func (s *Store) UpdateInventoryItem(id string, item models.InventoryItem) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.UpdateInventoryItem(userID, id, item); err != nil {
		s.log.WithError(err).Error("updating inventory item failed")
		s.notify(LevelError, i18n.KeyInventoryItemUpdateFail)
		return
	}
	_ = s.loadInventoryItems()
	s.notify(LevelInfo, i18n.KeyInventoryItemUpdated)
}

func (s *Store) RemoveInventoryItem(id string) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.DeleteInventoryItem(userID, id); err != nil {
		s.log.WithError(err).Error("removing inventory item failed")
		s.notify(LevelError, i18n.KeyInventoryItemRemoveFail)
		return
	}
	_ = s.loadInventoryItems()
	s.notify(LevelInfo, i18n.KeyInventoryItemRemoved)
}

// ---- product types ----

func (s *Store) AddProductType(pt models.ProductType) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	pt.UserID = userID
	if err := s.gw.InsertProductType(pt); err != nil {
		s.log.WithError(err).Error("adding product type failed")
		s.notify(LevelError, i18n.KeyProductTypeAddFailed)
		return
	}
	_ = s.loadProductTypes()
	s.notify(LevelInfo, i18n.KeyProductTypeAdded)
}

func (s *Store) UpdateProductType(id string, pt models.ProductType) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.UpdateProductType(userID, id, pt); err != nil {
		s.log.WithError(err).Error("updating product type failed")
		s.notify(LevelError, i18n.KeyProductTypeUpdateFailed)
		return
	}
	_ = s.loadProductTypes()
	s.notify(LevelInfo, i18n.KeyProductTypeUpdated)
}

func (s *Store) RemoveProductType(id string) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.DeleteProductType(userID, id); err != nil {
		s.log.WithError(err).Error("removing product type failed")
		s.notify(LevelError, i18n.KeyProductTypeRemoveFailed)
		return
	}
	_ = s.loadProductTypes()
	s.notify(LevelInfo, i18n.KeyProductTypeRemoved)
}

// ---- expenses ----

func (s *Store) AddExpense(description string, amount float64) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.InsertExpense(userID, description, amount); err != nil {
		s.log.WithError(err).Error("adding expense failed")
		s.notify(LevelError, i18n.KeyExpenseAddFailed)
		return
	}
	_ = s.loadExpenses()
	s.notify(LevelInfo, i18n.KeyExpenseAdded)
}

func (s *Store) RemoveExpense(id string) {
	userID, ok := s.currentUserID()
	if !ok {
		return
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.gw.DeleteExpense(userID, id); err != nil {
		s.log.WithError(err).Error("removing expense failed")
		s.notify(LevelError, i18n.KeyExpenseRemoveFailed)
		return
	}
	_ = s.loadExpenses()
	s.notify(LevelInfo, i18n.KeyExpenseRemoved)
}

// ---- helpers ----

func filterByDay(records []models.ServiceRecord, day time.Time) []models.ServiceRecord {
	var out []models.ServiceRecord
	for _, r := range records {
		if utils.SameDay(r.Timestamp, day) {
			out = append(out, r)
		}
	}
	sortByTimestampDesc(out)
	return out
}

func sortByTimestampDesc(records []models.ServiceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
}
