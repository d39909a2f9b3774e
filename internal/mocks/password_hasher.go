package mocks

// MockPasswordHasher implements auth.PasswordHasher for testing.
// By default it "hashes" by prefixing and verifies by comparing with that prefix.
type MockPasswordHasher struct {
	HashFn   func(password string) (string, error)
	VerifyFn func(password, hashedPassword string) bool
}

// Hash implements auth.PasswordHasher
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Verify implements auth.PasswordHasher
func (m *MockPasswordHasher) Verify(password, hashedPassword string) bool {
	if m.VerifyFn != nil {
		return m.VerifyFn(password, hashedPassword)
	}
	return hashedPassword == "hashed:"+password
}
