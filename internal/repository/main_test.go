//go:build integration
// +build integration

package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"pc-build-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TestMain runs before all repository tests and ensures proper Docker cleanup
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Repository tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("Starting repository integration tests...")
	code := m.Run()

	log.Println("Repository tests completed, cleaning up Docker containers...")
	testutils.CleanupSharedContainer()

	os.Exit(code)
}

// TestRepositoryTestSuite_Postgres runs the repository suite against a Postgres container
func TestRepositoryTestSuite_Postgres(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{usePostgres: true})
}
