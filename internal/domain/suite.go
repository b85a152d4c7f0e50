package domain

import "time"

// RunSource resolves the test run that device-scoped operations write into.
type RunSource interface {
	CurrentRun() *TestRun
}

// Suite is the batch of tests executed by one group, in registration order.
type Suite struct {
	Tests   []*Test
	current *Test
}

var _ RunSource = (*Suite)(nil)

func NewSuite() *Suite {
	return &Suite{}
}

// Begin makes name the current test, registering it with a first run when
// it is new. Re-entering an existing test keeps its runs.
func (s *Suite) Begin(name string, now time.Time) *Test {
	if test, ok := s.Find(name); ok {
		s.current = test
		if test.LatestRun() == nil {
			test.NewRun(now)
		}
		return test
	}

	test := &Test{Name: name}
	test.NewRun(now)
	s.Tests = append(s.Tests, test)
	s.current = test
	return test
}

func (s *Suite) Find(name string) (*Test, bool) {
	for _, test := range s.Tests {
		if test.Name == name {
			return test, true
		}
	}
	return nil, false
}

func (s *Suite) Current() *Test {
	return s.current
}

func (s *Suite) CurrentRun() *TestRun {
	return s.current.LatestRun()
}

func (s *Suite) First() *Test {
	if len(s.Tests) == 0 {
		return nil
	}
	return s.Tests[0]
}

func (s *Suite) SetGroupName(name string) {
	for _, test := range s.Tests {
		test.GroupName = name
	}
}
