package factory

import (
	"time"

	"github.com/nghuy/gameledger/internal/dependencies/mocks"
	"github.com/nghuy/gameledger/internal/services/auth"
	"github.com/nghuy/gameledger/internal/storage/memory"
	"github.com/nghuy/gameledger/internal/testutil"
)

// TestAuthConfig is the signing configuration used by test apps
var TestAuthConfig = auth.Config{
	Key:      "test-signing-key",
	Issuer:   "gameledger-test",
	Audience: "gameledger-test-clients",
	TokenTTL: auth.DefaultTokenTTL,
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app, err := newWithDependencies(store, mockClock, TestAuthConfig, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
