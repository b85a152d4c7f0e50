package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/devicefarm-e2e/internal/domain"
	"github.com/bnema/devicefarm-e2e/internal/ports"
)

type TestResult struct {
	Name      string
	GroupName string
	Runs      int
	Passed    bool
	Error     string
	Steps     int
	LogsPaths map[string]string
}

type ResultsService struct {
	repo ports.ResultRepository
}

func NewResultsService(repo ports.ResultRepository) *ResultsService {
	return &ResultsService{repo: repo}
}

func (s *ResultsService) Get(ctx context.Context, name string) (TestResult, error) {
	test, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return TestResult{}, fmt.Errorf("get test result: %w", err)
	}
	return resultFromTest(test), nil
}

// List returns stored results grouped by group name, then by test name.
func (s *ResultsService) List(ctx context.Context, group string) ([]TestResult, error) {
	tests, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list test results: %w", err)
	}

	results := make([]TestResult, 0, len(tests))
	for _, test := range tests {
		if group != "" && test.GroupName != group {
			continue
		}
		results = append(results, resultFromTest(test))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].GroupName == results[j].GroupName {
			return results[i].Name < results[j].Name
		}
		return results[i].GroupName < results[j].GroupName
	})

	return results, nil
}

func resultFromTest(test *domain.Test) TestResult {
	result := TestResult{
		Name:      test.Name,
		GroupName: test.GroupName,
		Runs:      len(test.TestRuns),
		Passed:    true,
	}

	if run := test.LatestRun(); run != nil {
		result.Passed = !run.HasError()
		result.Error = run.Error
		result.Steps = len(run.Steps)
		result.LogsPaths = run.LogsPaths
	}

	return result
}
