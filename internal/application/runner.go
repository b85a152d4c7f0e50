package application

import (
	"context"
	"testing"
)

// Method is one test method of a group.
type Method struct {
	Name string
	Run  func(t *testing.T, pool Pool, errs *Errors)
}

// RunGroup runs methods as sequential subtests of t against one shared pool.
// The pool is prepared before the first method and released after the last;
// queued device errors fail the method they were recorded in.
func RunGroup(t *testing.T, g *MultiDeviceGroup, methods ...Method) {
	t.Helper()

	if len(methods) == 0 {
		return
	}

	ctx := context.Background()
	now := g.clock.Now()
	for _, m := range methods {
		g.suite.Begin(m.Name, now)
	}
	g.suite.Begin(methods[0].Name, now)

	if err := g.Prepare(ctx); err != nil {
		for _, test := range g.suite.Tests {
			test.LatestRun().AppendError("Test setup failed: " + err.Error())
		}
	}

	t.Cleanup(func() {
		if err := g.TeardownGroup(ctx); err != nil {
			t.Errorf("teardown group %s: %v", g.Name(), err)
		}
	})

	for _, m := range methods {
		t.Run(m.Name, func(t *testing.T) {
			errs := g.SetupMethod(ctx, t, m.Name)

			t.Cleanup(func() {
				g.TeardownMethod(ctx, t, m.Name)

				if pending := errs.Drain(); len(pending) > 0 {
					msg := JoinErrors(pending)
					g.currentRun().AppendError(msg)
					t.Error(msg)
				}
				if run := g.currentRun(); t.Failed() && !run.HasError() {
					run.AppendError("test failed")
				}
			})

			m.Run(t, g.Pool(), errs)
			errs.FlushAndFail(t)
		})
	}
}
