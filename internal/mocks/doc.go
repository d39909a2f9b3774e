// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, tests import the
// standardized implementations from here:
//
//   - MemoryStore: in-memory UserStore and TaskStore sharing one data set,
//     honoring email uniqueness and ownership scoping like the PostgreSQL stores
//   - TestifyMockUserStore: a testify/mock based UserStore for call expectations
//   - MockAcquirer and MockConn: request-scoped connections without a database
//   - MockTokenService, MockPasswordHasher, MockSuggester: function-field mocks
//
// Usage:
//
//	mockTokens := &mocks.MockTokenService{
//	    ParseTokenFn: func(ctx context.Context, token string) (string, error) {
//	        return "user@example.com", nil
//	    },
//	}
package mocks
