//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "restaurant-api"
	ConsumerName = "front-office"

	StateCatalogEmpty  = "the catalog is empty"
	StateRestaurantSet = "the restaurant fixture is loaded"
)

const (
	SeededOrderID int64 = 1
	SeededDishID  int64 = 1
	MissingDishID int64 = 404

	SeededDishName  = "Pizza Margherita"
	SeededDishPrice = 10.0
	SeededUserName  = "Mohamed"
	SeededUserPhone = 23129129
	SeededDishTotal = 20.0
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the front office consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleDishPayload is the body the consumer posts to create a dish.
func ExampleDishPayload() map[string]any {
	return map[string]any{
		"name":  "Tiramisu",
		"price": 6.5,
	}
}

func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
