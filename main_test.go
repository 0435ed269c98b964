package jarowinkler

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if any test, the concurrent ones included,
// leaves a goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
