package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersionJSON(t *testing.T) {
	root := buildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version", "--json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	var info map[string]string
	if err := json.Unmarshal(out.Bytes(), &info); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if info["version"] != version {
		t.Errorf("version = %q, want %q", info["version"], version)
	}
}

func TestRootRejectsExtraArgs(t *testing.T) {
	root := buildRootCmd()
	root.SetArgs([]string{"a.txt", "b.txt"})
	if err := root.Execute(); err == nil {
		t.Error("expected an error for two file arguments")
	}
}

func TestMergeZedTasks_ReplacesManaged(t *testing.T) {
	existing := []zedTask{
		{Label: "build", Command: "make"},
		{Label: "zsv: old task", Command: "zsv"},
	}
	merged := mergeZedTasks(existing, defaultZedTasks())

	if merged[0].Label != "build" {
		t.Errorf("user task should be kept first, got %q", merged[0].Label)
	}
	for _, task := range merged {
		if task.Label == "zsv: old task" {
			t.Error("stale managed task should be replaced")
		}
	}
	if got := len(managedLabels(merged)); got != len(defaultZedTasks()) {
		t.Errorf("managed tasks = %d, want %d", got, len(defaultZedTasks()))
	}
}

func TestZedInstallUninstall(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZSV_ZED_CONFIG_DIR", dir)
	tasksPath := filepath.Join(dir, "tasks.json")
	if err := os.WriteFile(tasksPath, []byte(`[{"label":"build","command":"make"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	run := func(args ...string) string {
		t.Helper()
		root := buildRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(args)
		if err := root.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	run("zed", "install")
	tasks, err := readZedTasks(tasksPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1+len(defaultZedTasks()) {
		t.Errorf("tasks after install = %d", len(tasks))
	}
	if !strings.Contains(run("zed", "status"), "installed (") {
		t.Error("status should report the installed tasks")
	}

	run("zed", "uninstall")
	tasks, err = readZedTasks(tasksPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Label != "build" {
		t.Errorf("uninstall should leave only user tasks, got %+v", tasks)
	}
}
