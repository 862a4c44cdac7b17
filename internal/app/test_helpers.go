package app

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
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

// SetupAppTest creates a new app instance wired to the given input, with
// diagnostics captured in a SafeBuffer at debug level.
func SetupAppTest(t *testing.T, inR io.Reader, outW io.Writer) (*App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	appConfig := &Config{LogFormat: "text", LogLevel: "debug"}
	testApp := NewApp(inR, outW, logBuffer, appConfig)

	t.Cleanup(func() {
		if os.Getenv("AGECHECK_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
