package sweep

import (
	"testing"

	"go.uber.org/goleak"
)

// The pipeline is strictly single-threaded; no test may leave a goroutine
// behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
