package app

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"

	"github.com/vk/rostergo/internal/config"
	"github.com/vk/rostergo/internal/hcl"
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

// TestStreams holds the captured streams of an App under test.
type TestStreams struct {
	Out  *SafeBuffer
	Err  *SafeBuffer
	Logs *SafeBuffer
}

// SetupAppTest creates a new app instance for system testing. Logs are
// captured at debug level instead of going to a file.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader) (*App, *TestStreams) {
	t.Helper()

	if loader == nil {
		loader = hcl.NewLoader("")
	}
	streams := &TestStreams{Out: &SafeBuffer{}, Err: &SafeBuffer{}, Logs: &SafeBuffer{}}
	appConfig.LogLevel = "debug"
	testApp, err := NewApp(context.Background(), streams.Out, streams.Err, appConfig, loader, WithLogOutput(streams.Logs))
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}

	t.Cleanup(func() {
		_ = testApp.Close()
		if os.Getenv("ROSTER_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), streams.Logs.String())
		}
	})

	return testApp, streams
}
