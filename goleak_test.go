package puid

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewSpawnsNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)
	for i := 0; i < 1000; i++ {
		_ = New()
	}
}
