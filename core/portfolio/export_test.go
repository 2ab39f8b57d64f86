package portfolio

import (
	"testing"
	"time"
)

// SetNowFunc freezes the service clock at now for the duration of the test.
func SetNowFunc(t *testing.T, now time.Time) {
	t.Helper()
	old := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = old })
}
