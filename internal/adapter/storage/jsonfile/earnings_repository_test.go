package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

const testDataset = `[
  {
    "driver_id": "driver-demo-001",
    "gross_earnings": 1000,
    "expenses": 200,
    "penalties": [{"amount": 50}],
    "rewards": [{"amount": 20}],
    "reason": "late delivery penalty"
  },
  {
    "driver_id": "driver-demo-002",
    "gross_earnings": 450,
    "expenses": 0
  }
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "earnings.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}

func TestNewEarningsRepository_LoadsDataset(t *testing.T) {
	path := writeDataset(t, testDataset)

	repo, err := NewEarningsRepository(path, zap.NewNop())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	count, _ := repo.Count(context.Background())
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	record, err := repo.FindByDriverID(context.Background(), "driver-demo-001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record == nil {
		t.Fatal("expected record, got nil")
	}
	if record.GrossEarnings != 1000 || len(record.Penalties) != 1 {
		t.Errorf("unexpected record: %+v", record)
	}
}

func TestFindByDriverID_UnknownDriver(t *testing.T) {
	path := writeDataset(t, testDataset)
	repo, err := NewEarningsRepository(path, zap.NewNop())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	record, err := repo.FindByDriverID(context.Background(), "no-such-driver")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record != nil {
		t.Errorf("expected nil for unknown driver, got %+v", record)
	}
}

func TestNewEarningsRepository_MissingFile(t *testing.T) {
	_, err := NewEarningsRepository("/nonexistent/earnings.json", zap.NewNop())
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestNewEarningsRepository_MalformedFile(t *testing.T) {
	path := writeDataset(t, "{not json")
	_, err := NewEarningsRepository(path, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for malformed dataset")
	}
}
