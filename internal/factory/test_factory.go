package factory

import (
	"time"

	"github.com/mcoot/upwords-go/internal/dependencies/mocks"
	"github.com/mcoot/upwords-go/internal/storage/memory"
	"github.com/mcoot/upwords-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithRules(DefaultRules())
}

// NewTestAppWithRules creates a test App with custom rules
func NewTestAppWithRules(rules Rules) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, rules, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads the small dictionary that covers the test boards
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(testutil.Words())
}
