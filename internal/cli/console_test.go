package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	clierrors "github.com/exaroton/exaroton-go/internal/errors"
	"github.com/exaroton/exaroton-go/pkg/exaroton"
)

// scriptedReader feeds a fixed sequence of lines to the console loop and
// records what gets pushed into its history.
type scriptedReader struct {
	lines []string
	next  int
	saved []string
}

func (r *scriptedReader) Readline() (string, error) {
	if r.next >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.next]
	r.next++
	return line, nil
}

func (r *scriptedReader) SaveHistory(content string) error {
	r.saved = append(r.saved, content)
	return nil
}

func (r *scriptedReader) Close() error { return nil }

// withScriptedReader swaps the readline factory for the duration of a test.
func withScriptedReader(t *testing.T, reader *scriptedReader) {
	t.Helper()

	original := newLineReader
	newLineReader = func(cfg *readline.Config) (lineReader, error) { return reader, nil }
	t.Cleanup(func() { newLineReader = original })
}

func onlineServer(id string) *exaroton.Server {
	return &exaroton.Server{ID: id, Name: "survival", Address: "survival.exaroton.me",
		Status: exaroton.StatusOnline}
}

func TestConsoleSendsCommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	fake := &fakeAPI{servers: []*exaroton.Server{onlineServer("abc")}}
	withFakeAPI(t, fake)
	withScriptedReader(t, &scriptedReader{lines: []string{"say hi", "   ", "exit", "say after exit"}})

	output, err := executeCommand(t, "console", "abc")
	if err != nil {
		t.Fatalf("console failed: %v", err)
	}

	if len(fake.commands) != 1 || fake.commands[0] != "abc: say hi" {
		t.Errorf("unexpected commands: %v", fake.commands)
	}
	if !strings.Contains(output, "Connected to survival") {
		t.Errorf("expected connection banner in output:\n%s", output)
	}
	if !strings.Contains(output, "Session closed.") {
		t.Errorf("expected session close message in output:\n%s", output)
	}
}

func TestConsoleRequiresOnlineServer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	fake := &fakeAPI{servers: []*exaroton.Server{
		{ID: "abc", Name: "survival", Status: exaroton.StatusOffline},
	}}
	withFakeAPI(t, fake)

	_, err := executeCommand(t, "console", "abc")
	if err == nil {
		t.Fatal("expected error for offline server")
	}

	cliErr, ok := err.(*clierrors.CLIError)
	if !ok || cliErr.Code != clierrors.CodeAPIFailure {
		t.Errorf("expected API failure error, got %v", err)
	}
	if !strings.Contains(err.Error(), "not online") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestConsoleUnknownServer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	withFakeAPI(t, &fakeAPI{})

	_, err := executeCommand(t, "console", "missing")
	if err == nil {
		t.Fatal("expected error for unknown server")
	}

	cliErr, ok := err.(*clierrors.CLIError)
	if !ok || cliErr.Code != clierrors.CodeAPIFailure {
		t.Errorf("expected API failure error, got %v", err)
	}
}

func TestConsolePrimesHistoryFromStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	fake := &fakeAPI{servers: []*exaroton.Server{onlineServer("abc")}}
	withFakeAPI(t, fake)

	store, err := openState()
	if err != nil {
		t.Fatalf("openState failed: %v", err)
	}
	for _, command := range []string{"say earlier", "weather clear"} {
		if err := store.RecordCommand("abc", command); err != nil {
			t.Fatalf("RecordCommand failed: %v", err)
		}
	}
	if err := store.RecordCommand("other", "stop"); err != nil {
		t.Fatalf("RecordCommand failed: %v", err)
	}
	store.Close()

	reader := &scriptedReader{lines: []string{"exit"}}
	withScriptedReader(t, reader)

	if _, err := executeCommand(t, "console", "abc"); err != nil {
		t.Fatalf("console failed: %v", err)
	}

	if len(reader.saved) != 2 || reader.saved[0] != "say earlier" || reader.saved[1] != "weather clear" {
		t.Errorf("unexpected primed history: %v", reader.saved)
	}
}

func TestConsoleRecordsCommandsInStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	fake := &fakeAPI{servers: []*exaroton.Server{onlineServer("abc")}}
	withFakeAPI(t, fake)
	withScriptedReader(t, &scriptedReader{lines: []string{"say hi", "exit"}})

	if _, err := executeCommand(t, "console", "abc"); err != nil {
		t.Fatalf("console failed: %v", err)
	}

	store, err := openState()
	if err != nil {
		t.Fatalf("openState failed: %v", err)
	}
	defer store.Close()

	history, err := store.CommandHistory("abc", 10)
	if err != nil {
		t.Fatalf("CommandHistory failed: %v", err)
	}
	if len(history) != 1 || history[0] != "say hi" {
		t.Errorf("unexpected history: %v", history)
	}
}
