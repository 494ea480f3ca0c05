package layout

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// supportedMajor is the layout format major version this binary understands.
const supportedMajor = 1

// Layout describes the scaffold tree to build: ordered topic names (each used
// as a directory name and filename stem) and ordered utility filenames
// (literal names including extension).
type Layout struct {
	Version   string   `yaml:"version" json:"version"`
	Topics    []string `yaml:"topics" json:"topics"`
	Utilities []string `yaml:"utilities" json:"utilities"`
}

// Default returns the built-in layout: the classic LeetCode topic list and
// the two stock utility script placeholders. The returned value is a fresh
// copy; callers may modify it freely.
func Default() *Layout {
	return &Layout{
		Version: "1.0.0",
		Topics: []string{
			"Arrays", "Strings", "Dynamic_Programming", "Backtracking", "Bit_Manipulation",
			"Greedy", "Graphs", "Trees", "Math", "Hash_Table", "Sorting", "Searching",
			"Two_Pointers", "Sliding_Window", "Union_Find", "Heap", "Stack", "Queue",
			"Recursion", "Binary_Search", "Trie", "Divide_and_Conquer", "Monotonic_Stack",
		},
		Utilities: []string{"readme_generator.py", "leetcode_template.py"},
	}
}

// Difficulties returns the fixed difficulty levels in build order. They are
// not part of the configurable layout.
func Difficulties() []string {
	return []string{"Easy", "Medium", "Hard"}
}

// Parse unmarshals layout YAML. It does not schema-validate; see Validate.
func Parse(data []byte) (*Layout, error) {
	var lay Layout
	if err := yaml.Unmarshal(data, &lay); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	return &lay, nil
}

// LoadFile reads and parses a layout file.
func LoadFile(path string) (*Layout, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// CheckVersion verifies a layout version string is parseable semver with a
// major version this binary supports. An empty version is accepted and
// treated as the current format.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing layout version %q: %w", version, err)
	}
	if v.Major() != supportedMajor {
		return fmt.Errorf("unsupported layout version %q: this build supports major version %d", version, supportedMajor)
	}
	return nil
}

var titleCaser = cases.Title(language.English)

// DisplayName renders a topic name for human-readable listings, e.g.
// "Dynamic_Programming" becomes "Dynamic Programming".
func DisplayName(topic string) string {
	return titleCaser.String(strings.ReplaceAll(topic, "_", " "))
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
