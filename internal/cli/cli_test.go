package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eroom8/Java-document-sorter/internal/domain"
)

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// newWorkspace writes recsort.yaml and input.txt into a temp dir and returns the dir.
func newWorkspace(t *testing.T, cfg, input string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "recsort.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "input.txt"), []byte(input), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Use] = true
	}
	for _, expected := range []string{"sort", "check", "modes", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestSortCmd_Flags(t *testing.T) {
	cmd := sortCmd(&globalFlags{})
	if cmd.Use != "sort" {
		t.Errorf("expected Use=sort, got %q", cmd.Use)
	}
	for _, flag := range []string{"input", "output", "count", "mode", "exact", "report"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on sort command", flag)
		}
	}
}

// --- sort ---

func TestSort_UsesConfigDefaultsRelativeToRoot(t *testing.T) {
	root := newWorkspace(t,
		"recsort:\n  defaults:\n    count: 3\n    mode: count\n",
		"z,3\na,1\nm,2\nignored,0\n",
	)

	out, _, err := execute(t, "--config", filepath.Join(root, "recsort.yaml"), "sort")
	if err != nil {
		t.Fatalf("sort error: %v", err)
	}

	if got := readFile(t, filepath.Join(root, "output.txt")); got != "a,1\nm,2\nz,3\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if !strings.Contains(out, "Sorted 3 record(s) by count") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestSort_FlagsOverrideConfig(t *testing.T) {
	root := newWorkspace(t,
		"recsort:\n  defaults:\n    mode: count\n",
		"b,2\na,2\nc,1\n",
	)
	dst := filepath.Join(root, "sorted.txt")

	_, _, err := execute(t,
		"--config", filepath.Join(root, "recsort.yaml"),
		"sort", "--mode", "countThenName", "--output", dst, "-n", "3",
	)
	if err != nil {
		t.Fatalf("sort error: %v", err)
	}
	if got := readFile(t, dst); got != "c,1\na,2\nb,2\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSort_StableByCount(t *testing.T) {
	root := newWorkspace(t, "", "b,1\na,1\nb,0\n")
	_, _, err := execute(t, "--config", filepath.Join(root, "recsort.yaml"), "sort", "-m", "count", "-n", "3")
	if err != nil {
		t.Fatalf("sort error: %v", err)
	}
	if got := readFile(t, filepath.Join(root, "output.txt")); got != "b,0\nb,1\na,1\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSort_InvalidModeLeavesOutputUntouched(t *testing.T) {
	root := newWorkspace(t, "", "a,1\n")
	existing := filepath.Join(root, "existing.txt")
	if err := os.WriteFile(existing, []byte("keep me\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := filepath.Join(root, "recsort.yaml")

	_, errOut, err := execute(t, "--config", cfg, "sort", "--mode", "byAge", "--output", existing)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidMode) {
		t.Fatalf("expected invalid_mode, got %v", err)
	}
	if !strings.Contains(errOut, "byAge") {
		t.Fatalf("expected stderr to name the mode, got:\n%s", errOut)
	}
	if got := readFile(t, existing); got != "keep me\n" {
		t.Fatalf("expected output untouched, got %q", got)
	}

	fresh := filepath.Join(root, "fresh.txt")
	if _, _, err := execute(t, "--config", cfg, "sort", "--mode", "byAge", "--output", fresh); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := os.Stat(fresh); !os.IsNotExist(err) {
		t.Fatalf("expected output not to be created, stat err=%v", err)
	}
}

func TestSort_MissingInput(t *testing.T) {
	root := newWorkspace(t, "", "")
	_, errOut, err := execute(t,
		"--config", filepath.Join(root, "recsort.yaml"),
		"sort", "--input", filepath.Join(root, "nope.txt"),
	)
	if !domain.IsKind(err, domain.KindSourceNotFound) {
		t.Fatalf("expected source_not_found, got %v", err)
	}
	if !strings.HasPrefix(errOut, "Error:") {
		t.Fatalf("expected error on stderr, got:\n%s", errOut)
	}
}

func TestSort_MalformedInput(t *testing.T) {
	root := newWorkspace(t, "", "a,1\nb,two\n")
	_, _, err := execute(t, "--config", filepath.Join(root, "recsort.yaml"), "sort")
	if !domain.IsKind(err, domain.KindMalformedRecord) {
		t.Fatalf("expected malformed_record, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "output.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected no output on malformed input, stat err=%v", err)
	}
}

func TestSort_ShortInputTruncatesUnlessExact(t *testing.T) {
	root := newWorkspace(t, "", "b,2\na,1\n")
	cfg := filepath.Join(root, "recsort.yaml")

	out, _, err := execute(t, "--config", cfg, "sort", "-n", "5")
	if err != nil {
		t.Fatalf("sort error: %v", err)
	}
	if !strings.Contains(out, "input held 2 of 5") {
		t.Fatalf("expected truncation note, got:\n%s", out)
	}

	if _, _, err := execute(t, "--config", cfg, "sort", "-n", "5", "--exact"); !domain.IsKind(err, domain.KindShortSource) {
		t.Fatalf("expected short_source, got %v", err)
	}
}

func TestSort_WritesReportAndLog(t *testing.T) {
	root := newWorkspace(t, "recsort:\n  reports:\n    dir: reports\n", "b,2\na,1\n")

	out, _, err := execute(t, "--config", filepath.Join(root, "recsort.yaml"), "--debug", "sort", "--report", "-n", "2")
	if err != nil {
		t.Fatalf("sort error: %v", err)
	}
	if !strings.Contains(out, "Report: ") {
		t.Fatalf("expected report id in output, got:\n%s", out)
	}

	entries, err := os.ReadDir(filepath.Join(root, "reports"))
	if err != nil {
		t.Fatalf("read reports dir: %v", err)
	}
	var jsonFiles, index int
	for _, e := range entries {
		switch {
		case e.Name() == "index.jsonl":
			index++
		case strings.HasSuffix(e.Name(), ".json"):
			jsonFiles++
		}
	}
	if jsonFiles != 1 || index != 1 {
		t.Fatalf("expected one report and an index, got %v", entries)
	}

	log := readFile(t, filepath.Join(root, ".recsort", "logs", "recsort.log"))
	if !strings.Contains(log, "sort.saved") {
		t.Fatalf("expected sort.saved in log, got:\n%s", log)
	}
}

func TestSort_BadConfig(t *testing.T) {
	root := newWorkspace(t, "recsort:\n  defaults:\n    count: -1\n", "a,1\n")
	_, _, err := execute(t, "--config", filepath.Join(root, "recsort.yaml"), "sort")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

// --- check ---

func TestCheck_ReportsCount(t *testing.T) {
	root := newWorkspace(t, "", "a,1\nb,2\n")
	out, _, err := execute(t, "--config", filepath.Join(root, "recsort.yaml"), "check")
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if strings.TrimSpace(out) != "OK: 2 record(s)" {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(filepath.Join(root, "output.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected check not to write output")
	}
}

// --- modes / init / version ---

func TestModes_ListsAllKeys(t *testing.T) {
	out, _, err := execute(t, "modes")
	if err != nil {
		t.Fatalf("modes error: %v", err)
	}
	for _, m := range domain.Modes() {
		if !strings.Contains(out, m.Key) {
			t.Errorf("expected %q in output:\n%s", m.Key, out)
		}
	}
	if !strings.Contains(out, "equal names ordered by count") {
		t.Errorf("expected name alias note, got:\n%s", out)
	}
}

func TestInit_CreatesWorkspace(t *testing.T) {
	dir := t.TempDir()
	out, _, err := execute(t, "init", "--path", dir)
	if err != nil {
		t.Fatalf("init error: %v", err)
	}
	if !strings.Contains(out, dir) {
		t.Fatalf("expected path in output, got:\n%s", out)
	}

	// The generated workspace sorts out of the box.
	if _, _, err := execute(t, "--config", filepath.Join(dir, "recsort.yaml"), "sort"); err != nil {
		t.Fatalf("sort in fresh workspace: %v", err)
	}
	want := "Alice,1\nalice,3\nBob,7\nCharlie,7\ndave,0\n"
	if got := readFile(t, filepath.Join(dir, "output.txt")); got != want {
		t.Fatalf("unexpected output %q, want %q", got, want)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "recsort ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

// --- helpers ---

func TestPrintSortSummary(t *testing.T) {
	var buf bytes.Buffer
	printSortSummary(&buf, domain.SortReport{Mode: "name", Output: "out.txt", Loaded: 2}, "")
	if buf.String() != "Sorted 2 record(s) by name into out.txt\n" {
		t.Fatalf("unexpected summary %q", buf.String())
	}
}

func TestConfigPath(t *testing.T) {
	ws := &workspaceCtx{root: "/ws"}
	if got := ws.configPath("data/in.txt"); got != filepath.Join("/ws", "data", "in.txt") {
		t.Errorf("unexpected relative resolution %q", got)
	}
	if got := ws.configPath("/abs/in.txt"); got != "/abs/in.txt" {
		t.Errorf("expected absolute path kept, got %q", got)
	}
}
