package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"swiftride/internal/domain"
	"swiftride/internal/redis"
	"swiftride/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK CAR REPOSITORY
// ──────────────────────────────────────────────

// MockCarRepository is a mock implementation of CarRepository.
type MockCarRepository struct {
	mu   sync.RWMutex
	cars map[string]*domain.Car

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32

	// Error injection
	CreateError error
	UpdateError error
}

// NewMockCarRepository creates a new mock car repository.
func NewMockCarRepository() *MockCarRepository {
	return &MockCarRepository{
		cars: make(map[string]*domain.Car),
	}
}

// AddCar adds a car to the mock repository.
func (m *MockCarRepository) AddCar(car *domain.Car) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cars[car.ID] = car
}

func (m *MockCarRepository) Create(ctx context.Context, car *domain.Car) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cars[car.ID] = car
	return nil
}

func (m *MockCarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	car, ok := m.cars[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *car
	return &copy, nil
}

func (m *MockCarRepository) GetByHostID(ctx context.Context, hostID string) ([]*domain.Car, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Car, 0)
	for _, car := range m.cars {
		if car.HostID == hostID {
			copy := *car
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockCarRepository) ListAvailable(ctx context.Context, filter repository.CarFilter) ([]*domain.Car, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Car, 0)
	for _, car := range m.cars {
		if !car.IsActive || !car.Availability.IsAvailable {
			continue
		}
		if filter.MinPricePerHour != nil && car.PricePerHour < *filter.MinPricePerHour {
			continue
		}
		if filter.MaxPricePerHour != nil && car.PricePerHour > *filter.MaxPricePerHour {
			continue
		}
		if filter.Transmission != "" && car.Transmission != filter.Transmission {
			continue
		}
		if filter.FuelType != "" && car.FuelType != filter.FuelType {
			continue
		}
		copy := *car
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockCarRepository) Update(ctx context.Context, car *domain.Car) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cars[car.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *car
	m.cars[car.ID] = &copy
	return nil
}

func (m *MockCarRepository) SetActive(ctx context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	car, ok := m.cars[id]
	if !ok {
		return repository.ErrNotFound
	}
	car.IsActive = active
	return nil
}

// GetCar returns a car for test assertions.
func (m *MockCarRepository) GetCar(id string) *domain.Car {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cars[id]
}

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32

	// Error injection
	CreateError error
	UpdateError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *booking
	m.bookings[booking.ID] = &copy
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[booking.ID]; !ok {
		return repository.ErrNotFound
	}
	copy := *booking
	m.bookings[booking.ID] = &copy
	return nil
}

func (m *MockBookingRepository) ListByRenterID(ctx context.Context, renterID string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0)
	for _, booking := range m.bookings {
		if booking.RenterID == renterID {
			copy := *booking
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockBookingRepository) ListByHostID(ctx context.Context, hostID string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0)
	for _, booking := range m.bookings {
		if booking.HostID == hostID {
			copy := *booking
			result = append(result, &copy)
		}
	}
	return result, nil
}

// GetBooking returns a booking for test assertions.
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookings[id]
}

// ──────────────────────────────────────────────
// MOCK WALLET REPOSITORY
// ──────────────────────────────────────────────

// MockWalletRepository is a mock implementation of WalletRepository.
type MockWalletRepository struct {
	mu           sync.RWMutex
	transactions []*domain.WalletTransaction

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockWalletRepository creates a new mock wallet repository.
func NewMockWalletRepository() *MockWalletRepository {
	return &MockWalletRepository{}
}

func (m *MockWalletRepository) Create(ctx context.Context, txn *domain.WalletTransaction) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *txn
	m.transactions = append(m.transactions, &copy)
	return nil
}

func (m *MockWalletRepository) GetByReference(ctx context.Context, reference string) (*domain.WalletTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, txn := range m.transactions {
		if txn.Reference == reference {
			copy := *txn
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockWalletRepository) ListByAccountID(ctx context.Context, accountID string) ([]*domain.WalletTransaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.WalletTransaction, 0)
	for _, txn := range m.transactions {
		if txn.AccountID == accountID {
			copy := *txn
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockWalletRepository) GetBalance(ctx context.Context, accountID string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var balance float64
	for _, txn := range m.transactions {
		if txn.AccountID != accountID {
			continue
		}
		if txn.Type == domain.TransactionTypeCredit {
			balance += txn.Amount
		} else {
			balance -= txn.Amount
		}
	}
	return balance, nil
}

// CountTransactions returns the total number of ledger entries.
func (m *MockWalletRepository) CountTransactions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transactions)
}

// ──────────────────────────────────────────────
// MOCK CONDITION REPOSITORY
// ──────────────────────────────────────────────

// MockConditionRepository is a mock implementation of ConditionRepository.
type MockConditionRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.ConditionRecord

	// Counters for verification
	UpsertCallCount int32

	// Error injection
	UpsertError error
}

// NewMockConditionRepository creates a new mock condition repository.
func NewMockConditionRepository() *MockConditionRepository {
	return &MockConditionRepository{
		records: make(map[string]*domain.ConditionRecord),
	}
}

func conditionKey(bookingID string, phase domain.ConditionPhase) string {
	return bookingID + ":" + string(phase)
}

func (m *MockConditionRepository) Upsert(ctx context.Context, record *domain.ConditionRecord) error {
	atomic.AddInt32(&m.UpsertCallCount, 1)
	if m.UpsertError != nil {
		return m.UpsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *record
	m.records[conditionKey(record.BookingID, record.Phase)] = &copy
	return nil
}

func (m *MockConditionRepository) Get(ctx context.Context, bookingID string, phase domain.ConditionPhase) (*domain.ConditionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[conditionKey(bookingID, phase)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *record
	return &copy, nil
}

// CountRecords returns the number of stored condition records.
func (m *MockConditionRepository) CountRecords() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			copy := *user
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		copy := *user
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockUserRepository) UpdateKYCStatus(ctx context.Context, id string, status domain.KYCStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.KYCStatus = status
	return nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is an in-memory implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]bool),
	}
}

func (m *MockLockStore) AcquireBookingLock(ctx context.Context, bookingID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[bookingID] {
		return false, nil
	}
	m.locks[bookingID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseBookingLock(ctx context.Context, bookingID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, bookingID)
	return nil
}

// Hold marks a booking lock as already held, simulating a concurrent caller.
func (m *MockLockStore) Hold(bookingID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locks[bookingID] = true
}

// ──────────────────────────────────────────────
// MOCK TRACKING STORE
// ──────────────────────────────────────────────

// MockTrackingStore is an in-memory implementation of TrackingStoreInterface.
type MockTrackingStore struct {
	mu           sync.RWMutex
	telemetry    map[string]*redis.Telemetry
	killSwitches map[string]bool

	// Counters for verification
	SetTelemetryCallCount int32
}

// NewMockTrackingStore creates a new mock tracking store.
func NewMockTrackingStore() *MockTrackingStore {
	return &MockTrackingStore{
		telemetry:    make(map[string]*redis.Telemetry),
		killSwitches: make(map[string]bool),
	}
}

func (m *MockTrackingStore) SetTelemetry(ctx context.Context, bookingID string, t *redis.Telemetry) error {
	atomic.AddInt32(&m.SetTelemetryCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *t
	m.telemetry[bookingID] = &copy
	return nil
}

func (m *MockTrackingStore) GetTelemetry(ctx context.Context, bookingID string) (*redis.Telemetry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.telemetry[bookingID]
	if !ok {
		return nil, nil
	}
	copy := *t
	return &copy, nil
}

func (m *MockTrackingStore) SetKillSwitch(ctx context.Context, bookingID string, on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !on {
		delete(m.killSwitches, bookingID)
		return nil
	}
	m.killSwitches[bookingID] = true
	return nil
}

func (m *MockTrackingStore) GetKillSwitch(ctx context.Context, bookingID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.killSwitches[bookingID], nil
}
