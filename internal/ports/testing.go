package ports

// TestingT is the part of testing.TB the orchestration needs to fail a test.
type TestingT interface {
	Helper()
	Name() string
	Error(args ...any)
	Fatal(args ...any)
}
