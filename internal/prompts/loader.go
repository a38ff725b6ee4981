// Package prompts holds the instruction templates sent to the generation
// service, embedded at compile time as keyed JSON files.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	cacheMu sync.Mutex
	cache   = map[string]map[string]string{}
)

// Get returns the template stored under key in the named file. The
// filename carries no path component ("layout.json").
func Get(filename, key string) (string, error) {
	templates, err := load(filename)
	if err != nil {
		return "", err
	}
	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for templates the build embeds; a missing one is a
// packaging bug, so it panics.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders with the given values. Unknown
// placeholders are left in place so tests can catch them.
func Format(template string, data map[string]string) string {
	out := template
	for key, value := range data {
		out = strings.ReplaceAll(out, "{{."+key+"}}", value)
	}
	return out
}

// AnalyzeLayout builds the layout-analysis prompt for one slide. The data
// summary is expected to be pretty-printed JSON.
func AnalyzeLayout(slideType, dataSummary string) string {
	return Format(MustGet("layout.json", "analyze_layout"), map[string]string{
		"SlideType":   slideType,
		"DataSummary": dataSummary,
	})
}

func load(filename string) (map[string]string, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if templates, ok := cache[filename]; ok {
		return templates, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cache[filename] = templates
	return templates, nil
}

// ClearCache drops parsed templates. Only tests need it.
func ClearCache() {
	cacheMu.Lock()
	cache = map[string]map[string]string{}
	cacheMu.Unlock()
}
