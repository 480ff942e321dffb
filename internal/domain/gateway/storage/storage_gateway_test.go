package storage

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/uuid"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

// exerciseGateway runs the behaviour every StorageGateway must share.
func exerciseGateway(t *testing.T, gateway StorageGateway, key string) {
	t.Helper()
	ctx := context.Background()

	if _, found, err := gateway.Get(ctx, key); err != nil || found {
		t.Fatalf("Get(absent) = found %v, err %v; want not found", found, err)
	}

	if err := gateway.Set(ctx, key, `[{"name":"Paris","country":"FR"}]`); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	value, found, err := gateway.Get(ctx, key)
	if err != nil || !found {
		t.Fatalf("Get() = found %v, err %v; want found", found, err)
	}
	if value != `[{"name":"Paris","country":"FR"}]` {
		t.Errorf("Get() = %q", value)
	}

	if err := gateway.Set(ctx, key, "[]"); err != nil {
		t.Fatalf("Set(overwrite) = %v", err)
	}
	if value, _, _ := gateway.Get(ctx, key); value != "[]" {
		t.Errorf("Get() after overwrite = %q; want []", value)
	}

	if status := gateway.Health(ctx); status.Status != model.StatusUp {
		t.Errorf("Health() = %v; want UP", status)
	}
}

func TestMemoryStorageGateway(t *testing.T) {
	exerciseGateway(t, NewMemoryStorageGateway(), "weatherCities")
}

func TestFileStorageGateway(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	exerciseGateway(t, NewFileStorageGateway(path), "weatherCities")

	// a fresh gateway on the same file sees the persisted value
	value, found, err := NewFileStorageGateway(path).Get(context.Background(), "weatherCities")
	if err != nil || !found || value != "[]" {
		t.Errorf("reopened Get() = %q, %v, %v; want [] found", value, found, err)
	}
}

func TestFileStorageGateway_corruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	gateway := NewFileStorageGateway(path)

	if _, _, err := gateway.Get(context.Background(), "weatherCities"); err == nil {
		t.Error("Get() on corrupt file = nil error; want error")
	}
	if status := gateway.Health(context.Background()); status.Status != model.StatusDown {
		t.Errorf("Health() on corrupt file = %v; want DOWN", status.Status)
	}
}

func TestFileStorageGateway_setReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	gateway := NewFileStorageGateway(path)
	ctx := context.Background()

	if err := gateway.Set(ctx, "weatherCities", `[{"name":"Paris","country":"FR"}]`); err != nil {
		t.Fatalf("Set() on corrupt file = %v; want nil", err)
	}

	value, found, err := NewFileStorageGateway(path).Get(ctx, "weatherCities")
	if err != nil || !found || value != `[{"name":"Paris","country":"FR"}]` {
		t.Errorf("reopened Get() = %q, %v, %v; want the saved list", value, found, err)
	}
	if status := gateway.Health(ctx); status.Status != model.StatusUp {
		t.Errorf("Health() after Set = %v; want UP", status.Status)
	}

	backup, err := os.ReadFile(path + ".corrupt")
	if err != nil {
		t.Fatalf("corrupt file was not kept: %v", err)
	}
	if string(backup) != "{not json" {
		t.Errorf("backup = %q; want the original content", backup)
	}
}

// TestRedisStorageGateway needs a reachable server, e.g. REDIS_ADDR=localhost:6379.
func TestRedisStorageGateway(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("invalid REDIS_ADDR %q: %v", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("invalid REDIS_ADDR port %q: %v", portStr, err)
	}

	client := redis.NewClient(redis.NewRedisConfig().WithHost(host).WithPort(port))
	t.Cleanup(func() { _ = client.Close() })

	key := "weatherCities-test-" + uuid.NewString()
	t.Cleanup(func() { _ = client.Delete(context.Background(), key) })

	exerciseGateway(t, NewRedisStorageGateway(client), key)
}
