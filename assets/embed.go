package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed presets.txt
var FS embed.FS

// PresetLines returns the non-blank, non-comment lines of the embedded
// preset table.
func PresetLines() ([]string, error) {
	f, err := FS.Open("presets.txt")
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
