// Package testsupport holds helpers shared by command tests: building the
// todolist binary once per test run and wiring testscript environments.
package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/amonks/todolist/todo"
)

var (
	buildOnce    sync.Once
	todolistPath string
	buildErr     error
)

// BuildTodolist builds the todolist binary once and returns its path.
func BuildTodolist(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "todolist-bin-")
		if err != nil {
			buildErr = err
			return
		}

		todolistPath = filepath.Join(binDir, "todolist")
		cmd := exec.Command("go", "build", "-o", todolistPath, "./cmd/todolist")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build todolist: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}
	return todolistPath
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}

// SetupScriptEnv configures common environment variables for testscript.
// Each script gets its own data directory under the script work dir.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TODOLIST", BuildTodolist(t))

	dataDir := filepath.Join(env.WorkDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	env.Setenv("TODOLIST_DATA_DIR", dataDir)
	env.Setenv("HOME", filepath.Join(env.WorkDir, "home"))
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdTodoID finds a todo by title in a slot file and stores its ID in an
// env var. Scripts use it because IDs are generated UUIDs.
func CmdTodoID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("todoid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: todoid FILE TITLE VAR")
	}

	var items []todo.Todo
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		ts.Fatalf("parse %s: %v", args[0], err)
	}

	for _, item := range items {
		if item.Title == args[1] {
			ts.Setenv(args[2], item.ID)
			return
		}
	}
	ts.Fatalf("no todo titled %q in %s", args[1], args[0])
}
