package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScheduleCmd_PrintsTable(t *testing.T) {
	var out bytes.Buffer
	cmd := scheduleCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--birth", "2024-02-29"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected header + 19 rows, got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "SEQ") {
		t.Fatalf("expected header, got %q", lines[0])
	}
	if !strings.Contains(out.String(), "2040-02-29") {
		t.Fatalf("expected 16-year dose on 2040-02-29:\n%s", out.String())
	}
}

func TestScheduleCmd_CustomTemplateJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tpl.yaml")
	yml := "doses:\n  - name: A\n    category: test\n    days: 0\n  - name: B\n    category: test\n    weeks: 2\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatalf("write template: %v", err)
	}

	var out bytes.Buffer
	cmd := scheduleCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--birth", "2025-01-01", "--template", path, "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), `"DoseName": "B"`) {
		t.Fatalf("expected dose B in output:\n%s", out.String())
	}
}

func TestScheduleCmd_RejectsBadBirth(t *testing.T) {
	cmd := scheduleCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--birth", "29/02/2024"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for malformed birth date")
	}
}
