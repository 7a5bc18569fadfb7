package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/exaroton/exaroton-go/internal/interfaces"
)

// writeGarbage fills a file with data that is not a SQLite database.
func writeGarbage(path string) error {
	return os.WriteFile(path, []byte(strings.Repeat("not a database\n", 64)), 0600)
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	manager := NewManager()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	if err := manager.Initialize(dbPath); err != nil {
		t.Fatalf("Failed to initialize state database: %v", err)
	}
	t.Cleanup(func() { _ = manager.Close() })

	return manager
}

func TestProfiles_SaveGetDelete(t *testing.T) {
	manager := newTestManager(t)

	if err := manager.SaveProfile("default", "key-123"); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	profile, err := manager.GetProfile("default")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile == nil || profile.APIKey != "key-123" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	// Saving again overwrites the key
	if err := manager.SaveProfile("default", "key-456"); err != nil {
		t.Fatalf("SaveProfile overwrite failed: %v", err)
	}
	profile, err = manager.GetProfile("default")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile.APIKey != "key-456" {
		t.Errorf("expected overwritten key, got %q", profile.APIKey)
	}

	if err := manager.DeleteProfile("default"); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}
	profile, err = manager.GetProfile("default")
	if err != nil {
		t.Fatalf("GetProfile after delete failed: %v", err)
	}
	if profile != nil {
		t.Errorf("expected profile to be gone, got %+v", profile)
	}
}

func TestListProfiles_SortedByName(t *testing.T) {
	manager := newTestManager(t)

	for _, name := range []string{"work", "default", "alt"} {
		if err := manager.SaveProfile(name, "key-"+name); err != nil {
			t.Fatalf("SaveProfile(%q) failed: %v", name, err)
		}
	}

	profiles, err := manager.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}
	if profiles[0].Name != "alt" || profiles[2].Name != "work" {
		t.Errorf("profiles not sorted: %+v", profiles)
	}
}

func TestServerCache_RoundTripAndExpiry(t *testing.T) {
	manager := newTestManager(t)

	snapshot := []interfaces.CachedServer{
		{ID: "a1", Name: "survival", Address: "survival.exaroton.me", Status: "online", MOTD: "Welcome"},
		{ID: "b2", Name: "creative", Address: "creative.exaroton.me", Status: "offline", MOTD: ""},
	}
	if err := manager.CacheServers(snapshot); err != nil {
		t.Fatalf("CacheServers failed: %v", err)
	}

	fresh, err := manager.CachedServers(time.Minute)
	if err != nil {
		t.Fatalf("CachedServers failed: %v", err)
	}
	if len(fresh) != 2 {
		t.Fatalf("expected 2 cached servers, got %d", len(fresh))
	}
	if fresh[0].Name != "creative" {
		t.Errorf("expected servers ordered by name, got %q first", fresh[0].Name)
	}

	// A zero max age makes everything stale
	stale, err := manager.CachedServers(0)
	if err != nil {
		t.Fatalf("CachedServers(0) failed: %v", err)
	}
	if len(stale) != 0 {
		t.Errorf("expected stale cache to be empty, got %d rows", len(stale))
	}
}

func TestCacheServers_ReplacesSnapshot(t *testing.T) {
	manager := newTestManager(t)

	if err := manager.CacheServers([]interfaces.CachedServer{{ID: "a1", Name: "one"}}); err != nil {
		t.Fatalf("CacheServers failed: %v", err)
	}
	if err := manager.CacheServers([]interfaces.CachedServer{{ID: "b2", Name: "two"}}); err != nil {
		t.Fatalf("CacheServers failed: %v", err)
	}

	servers, err := manager.CachedServers(time.Minute)
	if err != nil {
		t.Fatalf("CachedServers failed: %v", err)
	}
	if len(servers) != 1 || servers[0].ID != "b2" {
		t.Errorf("expected snapshot to be replaced, got %+v", servers)
	}
}

func TestCommandHistory_LimitAndOrder(t *testing.T) {
	manager := newTestManager(t)

	for _, command := range []string{"say one", "say two", "say three"} {
		if err := manager.RecordCommand("a1", command); err != nil {
			t.Fatalf("RecordCommand failed: %v", err)
		}
	}
	if err := manager.RecordCommand("other", "say elsewhere"); err != nil {
		t.Fatalf("RecordCommand failed: %v", err)
	}

	history, err := manager.CommandHistory("a1", 2)
	if err != nil {
		t.Fatalf("CommandHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(history))
	}
	if history[0] != "say two" || history[1] != "say three" {
		t.Errorf("unexpected history order: %v", history)
	}
}

func TestInitialize_RejectsCorruptFile(t *testing.T) {
	manager := NewManager()
	dbPath := filepath.Join(t.TempDir(), "state.db")

	if err := writeGarbage(dbPath); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}

	if err := manager.Initialize(dbPath); err == nil {
		manager.Close()
		t.Error("expected initialization of a corrupt file to fail")
	}
}
