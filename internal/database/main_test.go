//go:build integration
// +build integration

package database_test

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"call-quality-backend/internal/testutils"
)

// TestMain runs before all database tests and ensures Docker cleanup
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
