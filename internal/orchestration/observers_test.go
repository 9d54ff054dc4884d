package orchestration

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/primecount/internal/logging"
	"github.com/agbru/primecount/internal/worker"
)

func TestLoggingObserver(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	obs := LoggingObserver{Logger: logging.NewLogger(&buf, "orchestration")}

	obs.WorkerStarted(2, 125)
	obs.WorkerFinished(worker.Report{ID: 2, Items: 125, Matches: 30, Duration: 3 * time.Millisecond})

	out := buf.String()
	for _, want := range []string{"worker started", "worker finished", `"items":125`, `"matches":30`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output should contain %q, got: %s", want, out)
		}
	}
}
