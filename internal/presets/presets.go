// internal/presets/presets.go
//
// Named starting configurations for the board engine.
//
// Responsibilities:
//   - Load the preset table from an environment-provided file or fall back to the embedded default.
//   - Validate every entry by building its board once.
//   - Supply Lookup and Names for collaborators picking a board by name.
//
// Table format (one preset per line, '#' starts a comment line):
//   name  kind  size  emptyRow  emptyCol
//
// Environment variables:
//   PEG_PRESETS_FILE=/path/to/presets.txt
//
// Initialization is run once (sync.Once).

package presets

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/shairomar-7/pegsolitaire/assets"
	"github.com/shairomar-7/pegsolitaire/internal/game"
)

// Preset is a named board configuration.
type Preset struct {
	Name     string
	Kind     game.Kind
	Size     int
	EmptyRow int
	EmptyCol int
}

// Engine builds a fresh board for the preset.
func (p Preset) Engine(opts ...game.Option) (*game.Engine, error) {
	return game.New(p.Kind, p.Size, p.EmptyRow, p.EmptyCol, opts...)
}

var (
	initOnce   sync.Once
	byName     map[string]Preset
	initialErr error
)

// Init loads the preset table exactly once.
func Init() error {
	initOnce.Do(func() {
		var lines []string
		var err error
		if path := os.Getenv("PEG_PRESETS_FILE"); path != "" {
			lines, err = readPresetFile(path)
		} else {
			lines, err = assets.PresetLines()
		}
		if err != nil {
			initialErr = err
			return
		}
		byName, initialErr = Parse(lines)
	})
	return initialErr
}

// Parse turns preset lines into a table keyed by name. Every preset must
// describe a board the engine accepts, and names must be unique.
func Parse(lines []string) (map[string]Preset, error) {
	out := make(map[string]Preset, len(lines))
	for _, line := range lines {
		p, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		if _, dup := out[p.Name]; dup {
			return nil, fmt.Errorf("presets: duplicate name %q", p.Name)
		}
		if _, err := p.Engine(); err != nil {
			return nil, fmt.Errorf("presets: %s: %w", p.Name, err)
		}
		out[p.Name] = p
	}
	if len(out) == 0 {
		return nil, errors.New("presets: table is empty")
	}
	return out, nil
}

func parseLine(line string) (Preset, error) {
	f := strings.Fields(line)
	if len(f) != 5 {
		return Preset{}, fmt.Errorf("presets: want 5 fields, got %d in %q", len(f), line)
	}
	kind, err := game.ParseKind(f[1])
	if err != nil {
		return Preset{}, fmt.Errorf("presets: %s: %w", f[0], err)
	}
	var nums [3]int
	for i, s := range f[2:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Preset{}, fmt.Errorf("presets: %s: bad number %q", f[0], s)
		}
		nums[i] = n
	}
	return Preset{
		Name:     strings.ToLower(f[0]),
		Kind:     kind,
		Size:     nums[0],
		EmptyRow: nums[1],
		EmptyCol: nums[2],
	}, nil
}

// readPresetFile loads a preset table from disk, skipping blank and comment lines.
func readPresetFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Lookup returns the preset with the given name (case-insensitive).
func Lookup(name string) (Preset, bool) {
	p, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names lists the loaded presets in sorted order.
func Names() []string {
	out := make([]string, 0, len(byName))
	for n := range byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
