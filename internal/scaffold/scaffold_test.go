package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leetkit-labs/leetkit/internal/layout"
)

func TestBuildDefaultLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "LeetCode")
	lay := layout.Default()

	result, err := Build(root, lay)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if result.Root != root {
		t.Errorf("Root = %q, want %q", result.Root, root)
	}

	// Top-level directory set.
	for _, dir := range []string{"Easy", "Medium", "Hard", "Topics", "Utilities"} {
		assertDir(t, filepath.Join(root, dir))
	}

	// One folder and placeholder per topic.
	for _, topic := range lay.Topics {
		assertDir(t, filepath.Join(root, "Topics", topic))

		content := readGenerated(t, root, filepath.Join("Topics", topic, topic+"_example.txt"))
		lines := splitLines(content)
		if len(lines) != 2 {
			t.Fatalf("topic file for %s has %d lines, want 2", topic, len(lines))
		}
		for _, line := range lines {
			assertContains(t, line, topic)
		}
	}

	// Difficulty placeholders.
	for _, d := range layout.Difficulties() {
		content := readGenerated(t, root, filepath.Join(d, d+"_example.txt"))
		lines := splitLines(content)
		if len(lines) != 2 {
			t.Fatalf("difficulty file for %s has %d lines, want 2", d, len(lines))
		}
		for _, line := range lines {
			assertContains(t, line, d)
		}
	}

	// Utility placeholders: the second line names the file.
	for _, u := range lay.Utilities {
		content := readGenerated(t, root, filepath.Join("Utilities", u))
		lines := splitLines(content)
		if len(lines) != 2 {
			t.Fatalf("utility file %s has %d lines, want 2", u, len(lines))
		}
		assertContains(t, lines[1], u)
	}

	// README.
	readme := readGenerated(t, root, "README.md")
	assertContains(t, readme, "# LeetCode Project")
	assertContains(t, readme, "`Easy`, `Medium`, `Hard` - Difficulty folders")
	assertContains(t, readme, "`Topics`")
	assertContains(t, readme, "`Utilities`")
}

func TestBuildExactTopicContent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "lc")
	lay := &layout.Layout{Topics: []string{"Arrays"}, Utilities: []string{"x.py"}}

	if _, err := Build(root, lay); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	got := readGenerated(t, root, filepath.Join("Topics", "Arrays", "Arrays_example.txt"))
	want := "# Dummy file for Arrays topic\n# Add your code solutions for Arrays here.\n"
	if got != want {
		t.Errorf("topic file content = %q, want %q", got, want)
	}

	gotUtil := readGenerated(t, root, filepath.Join("Utilities", "x.py"))
	wantUtil := "# This is a placeholder for the script\n# x.py - Add your utility code here.\n"
	if gotUtil != wantUtil {
		t.Errorf("utility file content = %q, want %q", gotUtil, wantUtil)
	}

	gotEasy := readGenerated(t, root, filepath.Join("Easy", "Easy_example.txt"))
	wantEasy := "# Dummy file for Easy level\n# Add your Easy level code solutions here.\n"
	if gotEasy != wantEasy {
		t.Errorf("difficulty file content = %q, want %q", gotEasy, wantEasy)
	}
}

func TestBuildCreationOrder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "lc")
	lay := &layout.Layout{Topics: []string{"Arrays", "Strings"}, Utilities: []string{"a.py", "b.py"}}

	result, err := Build(root, lay)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	wantDirs := []string{
		"Easy", "Medium", "Hard", "Topics",
		filepath.Join("Topics", "Arrays"),
		filepath.Join("Topics", "Strings"),
		"Utilities",
	}
	assertPaths(t, "Dirs", result.Dirs, wantDirs)

	wantFiles := []string{
		filepath.Join("Topics", "Arrays", "Arrays_example.txt"),
		filepath.Join("Topics", "Strings", "Strings_example.txt"),
		filepath.Join("Easy", "Easy_example.txt"),
		filepath.Join("Medium", "Medium_example.txt"),
		filepath.Join("Hard", "Hard_example.txt"),
		filepath.Join("Utilities", "a.py"),
		filepath.Join("Utilities", "b.py"),
		"README.md",
	}
	assertPaths(t, "Files", result.Files, wantFiles)
}

func TestBuildIdempotentDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "lc")
	lay := layout.Default()

	first, err := Build(root, lay)
	if err != nil {
		t.Fatalf("first Build() error: %v", err)
	}
	second, err := Build(root, lay)
	if err != nil {
		t.Fatalf("second Build() error: %v", err)
	}

	if len(first.Dirs) != len(second.Dirs) {
		t.Errorf("directory count changed across runs: %d vs %d", len(first.Dirs), len(second.Dirs))
	}
	for _, dir := range second.Dirs {
		assertDir(t, filepath.Join(root, dir))
	}
}

func TestBuildOverwritesPlaceholders(t *testing.T) {
	root := filepath.Join(t.TempDir(), "lc")
	lay := &layout.Layout{Topics: []string{"Graphs"}, Utilities: []string{"tool.py"}}

	if _, err := Build(root, lay); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	edited := []string{
		filepath.Join("Topics", "Graphs", "Graphs_example.txt"),
		filepath.Join("Utilities", "tool.py"),
		"README.md",
	}
	originals := make(map[string]string, len(edited))
	for _, rel := range edited {
		originals[rel] = readGenerated(t, root, rel)
		if err := os.WriteFile(filepath.Join(root, rel), []byte("user edits\n"), 0o644); err != nil {
			t.Fatalf("editing %s: %v", rel, err)
		}
	}

	if _, err := Build(root, lay); err != nil {
		t.Fatalf("rebuild error: %v", err)
	}

	for _, rel := range edited {
		got := readGenerated(t, root, rel)
		if got != originals[rel] {
			t.Errorf("%s not restored to template content:\ngot %q\nwant %q", rel, got, originals[rel])
		}
	}
}

func TestBuildRootCollision(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "occupied")
	if err := os.WriteFile(root, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("creating collision file: %v", err)
	}

	if _, err := Build(root, layout.Default()); err == nil {
		t.Fatal("expected error when root path is an existing file")
	}
}

func TestBuildTopicCollision(t *testing.T) {
	root := filepath.Join(t.TempDir(), "lc")
	lay := &layout.Layout{Topics: []string{"Arrays"}, Utilities: []string{"x.py"}}

	if err := os.MkdirAll(filepath.Join(root, "Topics"), 0o755); err != nil {
		t.Fatalf("preparing tree: %v", err)
	}
	// A file where the topic directory should go.
	if err := os.WriteFile(filepath.Join(root, "Topics", "Arrays"), []byte("collision"), 0o644); err != nil {
		t.Fatalf("creating collision file: %v", err)
	}

	if _, err := Build(root, lay); err == nil {
		t.Fatal("expected error when a topic path collides with a file")
	}

	// Earlier steps are not rolled back.
	assertDir(t, filepath.Join(root, "Easy"))
	assertDir(t, filepath.Join(root, "Topics"))
}

// ─── Test Helpers ──────────────────────────────────────────────────

func readGenerated(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func splitLines(content string) []string {
	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}

func assertDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", path)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertPaths(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", label, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", label, i, got[i], want[i])
		}
	}
}
