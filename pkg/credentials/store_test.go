// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package credentials

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lighthouse-hq/lighthouse/internal/analytics"
	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/state"
	"github.com/lighthouse-hq/lighthouse/internal/storage"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
	"github.com/lighthouse-hq/lighthouse/internal/types"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package credentials -destination ./mock_interfaces.go -source=./interfaces.go

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func newTestStore(s StorageInterface, p ProviderInterface, l LockerInterface, st StateInterface) *Store {
	logger := logging.NewNoopLogger()

	store := NewStore(
		s, p, l, st,
		Config{RefreshTokenLifetime: 720 * time.Hour},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
	store.now = func() time.Time { return testNow }

	return store
}

func brandWith(access string, accessExp time.Time, refresh string, refreshExp time.Time) *types.Brand {
	b := &types.Brand{ID: "brand-1", Name: "Acme", OwnerUserID: "user-1"}

	if access != "" {
		b.AccessToken = ptr(access)
		b.AccessExpiresAt = ptr(accessExp)
	}

	if refresh != "" {
		b.RefreshToken = ptr(refresh)
		b.RefreshExpiresAt = ptr(refreshExp)
	}

	return b
}

func TestStore_GetValidAccessToken(t *testing.T) {
	later := testNow.Add(24 * time.Hour)
	newGrant := &analytics.Grant{AccessToken: "access-2", RefreshToken: "refresh-2", Expiry: testNow.Add(time.Hour)}

	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockProviderInterface, *MockLockerInterface)
		expected    string
		expectedErr error
	}{
		{
			name: "valid token is returned without refresh",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(brandWith("access-1", testNow.Add(time.Hour), "refresh-1", later), nil)
			},
			expected: "access-1",
		},
		{
			name: "token expiring exactly at the window is still valid",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(brandWith("access-1", testNow.Add(DefaultRefreshWindow), "refresh-1", later), nil)
			},
			expected: "access-1",
		},
		{
			name: "token inside the window is refreshed",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				near := brandWith("access-1", testNow.Add(2*time.Minute), "refresh-1", later)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(near, nil).Times(2)
				l.EXPECT().Acquire(gomock.Any(), "refresh:brand-1").Return(func() {}, nil)
				p.EXPECT().Refresh(gomock.Any(), "refresh-1").Return(newGrant, nil)
				s.EXPECT().UpdateBrandTokens(gomock.Any(), "brand-1", types.TokenPair{
					AccessToken:      "access-2",
					RefreshToken:     "refresh-2",
					AccessExpiresAt:  testNow.Add(time.Hour),
					RefreshExpiresAt: testNow.Add(720 * time.Hour),
				}).Return(nil)
			},
			expected: "access-2",
		},
		{
			name: "absent access token is refreshed",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				b := brandWith("", time.Time{}, "refresh-1", later)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(b, nil).Times(2)
				l.EXPECT().Acquire(gomock.Any(), "refresh:brand-1").Return(func() {}, nil)
				p.EXPECT().Refresh(gomock.Any(), "refresh-1").Return(newGrant, nil)
				s.EXPECT().UpdateBrandTokens(gomock.Any(), "brand-1", gomock.Any()).Return(nil)
			},
			expected: "access-2",
		},
		{
			name: "omitted refresh token keeps the previous one",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				b := brandWith("", time.Time{}, "refresh-1", later)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(b, nil).Times(2)
				l.EXPECT().Acquire(gomock.Any(), "refresh:brand-1").Return(func() {}, nil)
				p.EXPECT().Refresh(gomock.Any(), "refresh-1").Return(&analytics.Grant{AccessToken: "access-2", Expiry: testNow.Add(time.Hour)}, nil)
				s.EXPECT().UpdateBrandTokens(gomock.Any(), "brand-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, pair types.TokenPair) error {
						if pair.RefreshToken != "refresh-1" {
							t.Errorf("expected previous refresh token to be kept, got %q", pair.RefreshToken)
						}
						return nil
					},
				)
			},
			expected: "access-2",
		},
		{
			name: "refresh done by another process is reused",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				gomock.InOrder(
					s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(brandWith("access-1", testNow.Add(time.Minute), "refresh-1", later), nil),
					s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(brandWith("access-9", testNow.Add(time.Hour), "refresh-9", later), nil),
				)
				l.EXPECT().Acquire(gomock.Any(), "refresh:brand-1").Return(func() {}, nil)
			},
			expected: "access-9",
		},
		{
			name: "missing refresh token requires reauthorization",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(brandWith("", time.Time{}, "", time.Time{}), nil)
			},
			expectedErr: ErrReauthRequired,
		},
		{
			name: "expired refresh token requires reauthorization",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(brandWith("access-1", testNow.Add(-time.Hour), "refresh-1", testNow.Add(-time.Second)), nil)
			},
			expectedErr: ErrReauthRequired,
		},
		{
			name: "rejected grant clears the stored pair",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				b := brandWith("access-1", testNow.Add(-time.Hour), "refresh-1", later)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(b, nil).Times(2)
				l.EXPECT().Acquire(gomock.Any(), "refresh:brand-1").Return(func() {}, nil)
				p.EXPECT().Refresh(gomock.Any(), "refresh-1").Return(nil, fmt.Errorf("provider rejected grant: %w", analytics.ErrReauthRequired))
				s.EXPECT().RevokeBrandTokens(gomock.Any(), "brand-1").Return(nil)
			},
			expectedErr: ErrReauthRequired,
		},
		{
			name: "transient provider failure leaves the pair untouched",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				b := brandWith("access-1", testNow.Add(-time.Hour), "refresh-1", later)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(b, nil).Times(2)
				l.EXPECT().Acquire(gomock.Any(), "refresh:brand-1").Return(func() {}, nil)
				p.EXPECT().Refresh(gomock.Any(), "refresh-1").Return(nil, fmt.Errorf("status 503: %w", analytics.ErrTransientProvider))
			},
			expectedErr: ErrTransientProvider,
		},
		{
			name: "lock failure is transient",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(brandWith("", time.Time{}, "refresh-1", later), nil)
				l.EXPECT().Acquire(gomock.Any(), "refresh:brand-1").Return(nil, errors.New("redis down"))
			},
			expectedErr: ErrTransientProvider,
		},
		{
			name: "unknown brand",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface) {
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockProvider := NewMockProviderInterface(ctrl)
			mockLocker := NewMockLockerInterface(ctrl)
			mockState := NewMockStateInterface(ctrl)

			tt.setupMocks(mockStorage, mockProvider, mockLocker)

			store := newTestStore(mockStorage, mockProvider, mockLocker, mockState)

			token, err := store.GetValidAccessToken(context.Background(), "brand-1")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				if token != "" {
					t.Errorf("expected no token, got %q", token)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if token != tt.expected {
				t.Errorf("expected token %q, got %q", tt.expected, token)
			}
		})
	}
}

// memoryStorage is a minimal brand table shared by concurrent callers.
type memoryStorage struct {
	mu     sync.Mutex
	brands map[string]types.Brand
}

func (m *memoryStorage) GetBrand(_ context.Context, id string) (*types.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.brands[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &b, nil
}

func (m *memoryStorage) UpdateBrandTokens(_ context.Context, id string, pair types.TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.brands[id]
	b.AccessToken = ptr(pair.AccessToken)
	b.RefreshToken = ptr(pair.RefreshToken)
	b.AccessExpiresAt = ptr(pair.AccessExpiresAt)
	b.RefreshExpiresAt = ptr(pair.RefreshExpiresAt)
	m.brands[id] = b

	return nil
}

func (m *memoryStorage) RevokeBrandTokens(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.brands[id]
	b.AccessToken, b.RefreshToken, b.AccessExpiresAt, b.RefreshExpiresAt = nil, nil, nil, nil
	m.brands[id] = b

	return nil
}

type countingProvider struct {
	calls   atomic.Int32
	release chan struct{}
}

func (p *countingProvider) AuthorizationURL(string, string) string {
	return ""
}

func (p *countingProvider) Exchange(context.Context, string) (*analytics.Grant, error) {
	return nil, errors.New("not used")
}

func (p *countingProvider) Refresh(_ context.Context, refreshToken string) (*analytics.Grant, error) {
	n := p.calls.Add(1)
	<-p.release

	return &analytics.Grant{
		AccessToken:  fmt.Sprintf("access-%d", n+1),
		RefreshToken: fmt.Sprintf("refresh-%d", n+1),
		Expiry:       testNow.Add(time.Hour),
	}, nil
}

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, string) (func(), error) {
	return func() {}, nil
}

func TestStore_ConcurrentRefreshIsSingleFlight(t *testing.T) {
	mem := &memoryStorage{brands: map[string]types.Brand{
		"brand-1": *brandWith("access-1", testNow.Add(time.Minute), "refresh-1", testNow.Add(time.Hour)),
	}}
	provider := &countingProvider{release: make(chan struct{})}

	store := newTestStore(mem, provider, noopLocker{}, nil)

	const callers = 25

	var wg sync.WaitGroup
	tokens := make([]string, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = store.GetValidAccessToken(context.Background(), "brand-1")
		}(i)
	}

	// hold the refresh open long enough for every caller to queue up
	time.Sleep(50 * time.Millisecond)
	close(provider.release)
	wg.Wait()

	if n := provider.calls.Load(); n != 1 {
		t.Fatalf("expected exactly one refresh, got %d", n)
	}

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Errorf("caller %d: unexpected error: %v", i, errs[i])
		}
		if tokens[i] != "access-2" {
			t.Errorf("caller %d: expected access-2, got %q", i, tokens[i])
		}
	}

	b, _ := mem.GetBrand(context.Background(), "brand-1")
	if *b.RefreshToken != "refresh-2" {
		t.Errorf("expected rotated refresh token to be stored, got %q", *b.RefreshToken)
	}
	if !b.AccessExpiresAt.After(testNow) {
		t.Errorf("expected stored expiry after now, got %s", b.AccessExpiresAt)
	}
}

func TestStore_CancelledWaiterDoesNotAbortRefresh(t *testing.T) {
	mem := &memoryStorage{brands: map[string]types.Brand{
		"brand-1": *brandWith("", time.Time{}, "refresh-1", testNow.Add(time.Hour)),
	}}
	provider := &countingProvider{release: make(chan struct{})}

	store := newTestStore(mem, provider, noopLocker{}, nil)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := store.GetValidAccessToken(ctx, "brand-1")
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	if err := <-done; !errors.Is(err, ErrTransientProvider) {
		t.Fatalf("expected transient error for cancelled caller, got %v", err)
	}

	close(provider.release)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		b, _ := mem.GetBrand(context.Background(), "brand-1")
		if b.AccessToken != nil {
			if *b.AccessToken != "access-2" {
				t.Errorf("expected access-2, got %q", *b.AccessToken)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatal("refresh did not complete after the caller went away")
}

func TestStore_RejectedGrantIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mem := &memoryStorage{brands: map[string]types.Brand{
		"brand-1": *brandWith("", time.Time{}, "refresh-1", testNow.Add(time.Hour)),
	}}
	mockProvider := NewMockProviderInterface(ctrl)
	mockProvider.EXPECT().Refresh(gomock.Any(), "refresh-1").Return(nil, analytics.ErrReauthRequired).Times(1)

	store := newTestStore(mem, mockProvider, noopLocker{}, nil)

	for i := 0; i < 3; i++ {
		if _, err := store.GetValidAccessToken(context.Background(), "brand-1"); !errors.Is(err, ErrReauthRequired) {
			t.Fatalf("attempt %d: expected reauthorization error, got %v", i, err)
		}
	}
}

func TestStore_AuthorizationURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockProvider := NewMockProviderInterface(ctrl)
	mockState := NewMockStateInterface(ctrl)

	mockStorage.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(&types.Brand{ID: "brand-1"}, nil)
	mockState.EXPECT().Issue(state.PurposeBrandAuthorization, "brand-1").Return("signed", nil)
	mockProvider.EXPECT().AuthorizationURL("brand-1", "signed").Return("https://provider/auth?state=signed")

	store := newTestStore(mockStorage, mockProvider, NewMockLockerInterface(ctrl), mockState)

	url, err := store.AuthorizationURL(context.Background(), "brand-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if url != "https://provider/auth?state=signed" {
		t.Errorf("unexpected url %q", url)
	}
}

func TestStore_CompleteAuthorization(t *testing.T) {
	grant := &analytics.Grant{AccessToken: "access-1", RefreshToken: "refresh-1", Expiry: testNow.Add(time.Hour)}

	tests := []struct {
		name        string
		code        string
		setupMocks  func(*MockStorageInterface, *MockProviderInterface, *MockLockerInterface, *MockStateInterface)
		expectedErr error
	}{
		{
			name: "success resets the pair",
			code: "code-1",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface, st *MockStateInterface) {
				st.EXPECT().Verify(state.PurposeBrandAuthorization, "state-1").Return("brand-1", nil)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(&types.Brand{ID: "brand-1"}, nil)
				l.EXPECT().Acquire(gomock.Any(), "refresh:brand-1").Return(func() {}, nil)
				p.EXPECT().Exchange(gomock.Any(), "code-1").Return(grant, nil)
				s.EXPECT().UpdateBrandTokens(gomock.Any(), "brand-1", types.TokenPair{
					AccessToken:      "access-1",
					RefreshToken:     "refresh-1",
					AccessExpiresAt:  testNow.Add(time.Hour),
					RefreshExpiresAt: testNow.Add(720 * time.Hour),
				}).Return(nil)
			},
		},
		{
			name: "invalid state",
			code: "code-1",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface, st *MockStateInterface) {
				st.EXPECT().Verify(state.PurposeBrandAuthorization, "state-1").Return("", state.ErrInvalidState)
			},
			expectedErr: state.ErrInvalidState,
		},
		{
			name: "missing code",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface, st *MockStateInterface) {
				st.EXPECT().Verify(state.PurposeBrandAuthorization, "state-1").Return("brand-1", nil)
			},
			expectedErr: ErrConfig,
		},
		{
			name: "brand deleted meanwhile",
			code: "code-1",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface, st *MockStateInterface) {
				st.EXPECT().Verify(state.PurposeBrandAuthorization, "state-1").Return("brand-1", nil)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "incomplete grant",
			code: "code-1",
			setupMocks: func(s *MockStorageInterface, p *MockProviderInterface, l *MockLockerInterface, st *MockStateInterface) {
				st.EXPECT().Verify(state.PurposeBrandAuthorization, "state-1").Return("brand-1", nil)
				s.EXPECT().GetBrand(gomock.Any(), "brand-1").Return(&types.Brand{ID: "brand-1"}, nil)
				l.EXPECT().Acquire(gomock.Any(), "refresh:brand-1").Return(func() {}, nil)
				p.EXPECT().Exchange(gomock.Any(), "code-1").Return(nil, fmt.Errorf("missing refresh_token: %w", analytics.ErrConfig))
			},
			expectedErr: ErrConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockProvider := NewMockProviderInterface(ctrl)
			mockLocker := NewMockLockerInterface(ctrl)
			mockState := NewMockStateInterface(ctrl)

			tt.setupMocks(mockStorage, mockProvider, mockLocker, mockState)

			store := newTestStore(mockStorage, mockProvider, mockLocker, mockState)

			brandID, err := store.CompleteAuthorization(context.Background(), tt.code, "state-1")

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if brandID != "brand-1" {
				t.Errorf("expected brand-1, got %q", brandID)
			}
		})
	}
}
