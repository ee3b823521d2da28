package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/branchsim/internal/config"
	"github.com/vk/branchsim/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing. Log output is
// suppressed below error level so the captured buffer holds only results.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader, modules ...registry.Module[float64]) (*App, *SafeBuffer) {
	t.Helper()

	outBuffer := &SafeBuffer{}
	if appConfig.LogLevel == "" {
		appConfig.LogLevel = "error"
	}
	testApp := NewApp(outBuffer, appConfig, loader, modules...)

	t.Cleanup(func() {
		if os.Getenv("BRANCHSIM_TEST_LOGS") == "true" {
			t.Logf("--- Full output for %s ---\n%s", t.Name(), outBuffer.String())
		}
	})

	return testApp, outBuffer
}
