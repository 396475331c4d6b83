package ui

// Prompter defines interface for user interaction
type Prompter interface {
	ConfirmOverwrite(path string) (bool, error)
}

// DefaultPrompter implements the actual prompting logic
type DefaultPrompter struct{}

// ConfirmOverwrite prompts user before replacing a report
func (p *DefaultPrompter) ConfirmOverwrite(path string) (bool, error) {
	return ConfirmOverwrite(path)
}

// MockPrompter for testing
type MockPrompter struct {
	Confirmed         bool
	ConfirmationError error

	// Call tracking
	ConfirmOverwriteCalled bool
	LastPath               string
}

// ConfirmOverwrite mocks confirmation
func (m *MockPrompter) ConfirmOverwrite(path string) (bool, error) {
	m.ConfirmOverwriteCalled = true
	m.LastPath = path
	return m.Confirmed, m.ConfirmationError
}
