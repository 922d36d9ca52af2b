package controller

import (
	"quiz_engine_backend/internal/service"
	"sync"
)

// TestsGuard serializes access to the shared test management service.
// The service itself is single-session; HTTP handlers run concurrently.
type TestsGuard struct {
	mu  sync.Mutex
	svc *service.TestManagementService
}

func NewTestsGuard(svc *service.TestManagementService) *TestsGuard {
	return &TestsGuard{svc: svc}
}

func (g *TestsGuard) Do(fn func(svc *service.TestManagementService) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.svc)
}

// Read runs fn under the guard for calls that cannot fail.
func (g *TestsGuard) Read(fn func(svc *service.TestManagementService)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.svc)
}
