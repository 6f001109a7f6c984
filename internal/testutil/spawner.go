package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/vk/bootstrapgo/internal/spawn"
)

// Spawner is a scripted spawn.Runner. It records every command it is asked
// to run and answers with whatever OnRun returns; a nil OnRun reports
// success for everything. Tests assert on the recorded calls to verify
// which pipeline stages actually spawned a process.
type Spawner struct {
	mu    sync.Mutex
	calls []spawn.Command

	// OnRun, when set, scripts the outcome of each call.
	OnRun func(ctx context.Context, cmd spawn.Command) (int, error)
}

// Run implements spawn.Runner.
func (s *Spawner) Run(ctx context.Context, cmd spawn.Command) (int, error) {
	s.mu.Lock()
	s.calls = append(s.calls, cmd)
	s.mu.Unlock()

	if s.OnRun != nil {
		return s.OnRun(ctx, cmd)
	}
	return 0, nil
}

// Calls returns a copy of the recorded commands in call order.
func (s *Spawner) Calls() []spawn.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]spawn.Command(nil), s.calls...)
}

// CallCount returns how many commands were spawned.
func (s *Spawner) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// CountMatching returns how many recorded command lines contain substr.
func (s *Spawner) CountMatching(substr string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if strings.Contains(c.String(), substr) {
			n++
		}
	}
	return n
}

// FailMatching scripts a Spawner whose commands succeed except those whose
// command line contains substr, which exit with the given code.
func FailMatching(substr string, code int) func(ctx context.Context, cmd spawn.Command) (int, error) {
	return func(_ context.Context, cmd spawn.Command) (int, error) {
		if strings.Contains(cmd.String(), substr) {
			return code, nil
		}
		return 0, nil
	}
}
