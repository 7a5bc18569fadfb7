package cli

import (
	"strings"
	"testing"

	"github.com/exaroton/exaroton-go/pkg/exaroton"
)

func TestServersCommand_CachesAndServesFromCache(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	fake := &fakeAPI{servers: []*exaroton.Server{
		{ID: "abc", Name: "survival", Address: "survival.exaroton.me", Status: exaroton.StatusOnline},
	}}
	withFakeAPI(t, fake)

	// First run hits the API and fills the cache
	output, err := executeCommand(t, "servers")
	if err != nil {
		t.Fatalf("servers failed: %v", err)
	}
	if !strings.Contains(output, "survival") {
		t.Errorf("expected server in output:\n%s", output)
	}
	if fake.listRequests != 1 {
		t.Fatalf("expected 1 API request, got %d", fake.listRequests)
	}

	// Second run is served from the cache
	output, err = executeCommand(t, "servers")
	if err != nil {
		t.Fatalf("servers failed: %v", err)
	}
	if !strings.Contains(output, "cached") {
		t.Errorf("expected cached marker in output:\n%s", output)
	}
	if fake.listRequests != 1 {
		t.Errorf("expected cache hit, got %d API requests", fake.listRequests)
	}
}

func TestServersCommand_RefreshBypassesCache(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	fake := &fakeAPI{servers: []*exaroton.Server{
		{ID: "abc", Name: "survival", Status: exaroton.StatusOffline},
	}}
	withFakeAPI(t, fake)

	defer func() { serversRefresh = false }()
	for i := 0; i < 2; i++ {
		if _, err := executeCommand(t, "servers", "--refresh"); err != nil {
			t.Fatalf("servers --refresh failed: %v", err)
		}
	}

	if fake.listRequests != 2 {
		t.Errorf("expected 2 API requests with --refresh, got %d", fake.listRequests)
	}
}
