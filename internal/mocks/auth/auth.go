package auth

// Package auth contains simple hand-written test doubles for the identity
// and storage ports. These are lightweight and suitable for unit tests
// without codegen. Unlike the real adapters, the double delivers state
// notifications synchronously from Notify, which keeps tests deterministic.

import (
	"context"
	"sort"
	"sync"

	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
	"github.com/campusapps/studentdir/internal/domain/model"
	"github.com/campusapps/studentdir/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityProvider  = (*MockIdentityProvider)(nil)
	_ ports.StudentRepository = (*MemoryStudentStore)(nil)
	_ ports.KeyValueStore     = (*MemoryKeyValueStore)(nil)
)

// MockIdentityProvider simulates an identity provider with scriptable
// behavior and recorded call counts. Tests drive state changes explicitly
// via Notify.
type MockIdentityProvider struct {
	VerifyPasswordFunc   func(ctx context.Context, email, password string) (domainauth.Identity, error)
	CreateIdentityFunc   func(ctx context.Context, email, password string) (domainauth.Identity, error)
	DeleteIdentityFunc   func(ctx context.Context, userID string) error
	TerminateSessionFunc func(ctx context.Context) error

	mu              sync.Mutex
	subs            map[int]ports.StateCallback
	nextSub         int
	VerifyCalls     int
	CreateCalls     int
	DeleteCalls     int
	TerminateCalls  int
	DeletedUserIDs  []string
	SkipInitialFire bool // leave the session resolving until Notify is called
	InitialIdentity *domainauth.Identity
}

// NewMockIdentityProvider creates a provider double that immediately
// notifies subscribers with InitialIdentity (nil by default).
func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{subs: make(map[int]ports.StateCallback)}
}

// Subscribe registers cb. Unless SkipInitialFire is set, cb is invoked
// synchronously with the initial identity, resolving the session.
func (m *MockIdentityProvider) Subscribe(cb ports.StateCallback) func() {
	m.mu.Lock()
	token := m.nextSub
	m.nextSub++
	m.subs[token] = cb
	skip := m.SkipInitialFire
	initial := m.InitialIdentity
	m.mu.Unlock()

	if !skip {
		cb(initial)
	}
	return func() {
		m.mu.Lock()
		delete(m.subs, token)
		m.mu.Unlock()
	}
}

// Notify delivers a state change synchronously to every subscriber.
func (m *MockIdentityProvider) Notify(identity *domainauth.Identity) {
	m.mu.Lock()
	cbs := make([]ports.StateCallback, 0, len(m.subs))
	for _, cb := range m.subs {
		cbs = append(cbs, cb)
	}
	m.mu.Unlock()

	for _, cb := range cbs {
		cb(identity)
	}
}

func (m *MockIdentityProvider) VerifyPassword(ctx context.Context, email, password string) (domainauth.Identity, error) {
	m.mu.Lock()
	m.VerifyCalls++
	m.mu.Unlock()
	if m.VerifyPasswordFunc != nil {
		return m.VerifyPasswordFunc(ctx, email, password)
	}
	return domainauth.Identity{UserID: "mock-user-1", Email: email}, nil
}

func (m *MockIdentityProvider) CreateIdentity(ctx context.Context, email, password string) (domainauth.Identity, error) {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateIdentityFunc != nil {
		return m.CreateIdentityFunc(ctx, email, password)
	}
	return domainauth.Identity{UserID: "mock-user-1", Email: email}, nil
}

func (m *MockIdentityProvider) DeleteIdentity(ctx context.Context, userID string) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.DeletedUserIDs = append(m.DeletedUserIDs, userID)
	m.mu.Unlock()
	if m.DeleteIdentityFunc != nil {
		return m.DeleteIdentityFunc(ctx, userID)
	}
	return nil
}

func (m *MockIdentityProvider) TerminateSession(ctx context.Context) error {
	m.mu.Lock()
	m.TerminateCalls++
	m.mu.Unlock()
	if m.TerminateSessionFunc != nil {
		return m.TerminateSessionFunc(ctx)
	}
	return nil
}

// MemoryStudentStore is an in-memory StudentRepository.
type MemoryStudentStore struct {
	mu       sync.Mutex
	profiles map[string]model.StudentProfile

	// PutErr, when set, makes every Put fail with it.
	PutErr error
}

// NewMemoryStudentStore creates an empty in-memory student store.
func NewMemoryStudentStore() *MemoryStudentStore {
	return &MemoryStudentStore{profiles: make(map[string]model.StudentProfile)}
}

func (s *MemoryStudentStore) Put(_ context.Context, profile *model.StudentProfile) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = *profile
	return nil
}

func (s *MemoryStudentStore) GetByID(_ context.Context, id string) (*model.StudentProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, errNotFound
	}
	c := p
	return &c, nil
}

// ListOrderedByName sorts bytewise ascending, matching the repository's
// case-sensitive collation.
func (s *MemoryStudentStore) ListOrderedByName(_ context.Context) ([]*model.StudentProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.StudentProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		c := p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Len returns the number of stored profiles.
func (s *MemoryStudentStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.profiles)
}

type memoryNotFoundError struct{}

func (memoryNotFoundError) Error() string { return "student profile not found" }

var errNotFound error = memoryNotFoundError{}

// MemoryKeyValueStore is an in-memory KeyValueStore.
type MemoryKeyValueStore struct {
	mu     sync.Mutex
	values map[string]string

	// SetErr and DeleteErr, when set, make the corresponding operation fail.
	SetErr    error
	DeleteErr error
}

// NewMemoryKeyValueStore creates an empty in-memory key-value store.
func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{values: make(map[string]string)}
}

func (s *MemoryKeyValueStore) Set(_ context.Context, key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryKeyValueStore) DeleteMany(_ context.Context, keys ...string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

// Len returns the number of stored keys.
func (s *MemoryKeyValueStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}
