//go:build integration
// +build integration

package repository

import (
	"os"
	"testing"

	"hackathon-portal-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunWithContainerCleanup(m, "repository"))
}
