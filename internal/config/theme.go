package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

// Theme is a named set of CSS variables consumed by the editor frontend.
type Theme struct {
	Name      string            `json:"name" yaml:"name"`
	Author    string            `json:"author,omitempty" yaml:"author,omitempty"`
	Version   string            `json:"version,omitempty" yaml:"version,omitempty"`
	Variables map[string]string `json:"variables" yaml:"variables"`
}

// DarkTheme returns the built-in dark theme.
func DarkTheme() Theme {
	return Theme{
		Name:    "Dark",
		Author:  "Loom.md",
		Version: "1.0.0",
		Variables: map[string]string{
			"bg-primary":        "#1e1e1e",
			"bg-secondary":      "#252526",
			"bg-tertiary":       "#2d2d30",
			"text-primary":      "#d4d4d4",
			"text-secondary":    "#858585",
			"border-color":      "#3e3e42",
			"accent-color":      "#007acc",
			"accent-hover":      "#0098ff",
			"heading-color":     "#4ec9b0",
			"h1-color":          "#569cd6",
			"h2-color":          "#4ec9b0",
			"h3-color":          "#dcdcaa",
			"h4-color":          "#9cdcfe",
			"h5-color":          "#c586c0",
			"h6-color":          "#858585",
			"code-bg":           "#1e1e1e",
			"code-color":        "#ce9178",
			"link-color":        "#3794ff",
			"blockquote-border": "#007acc",
			"blockquote-bg":     "#1e1e1e",
			"table-border":      "#3e3e42",
			"table-header-bg":   "#2d2d30",
			"list-marker":       "#569cd6",
			"hr-color":          "#3e3e42",
		},
	}
}

// LightTheme returns the built-in light theme.
func LightTheme() Theme {
	return Theme{
		Name:    "Light",
		Author:  "Loom.md",
		Version: "1.0.0",
		Variables: map[string]string{
			"bg-primary":        "#ffffff",
			"bg-secondary":      "#f3f3f3",
			"bg-tertiary":       "#e8e8e8",
			"text-primary":      "#1e1e1e",
			"text-secondary":    "#6e6e6e",
			"border-color":      "#d4d4d4",
			"accent-color":      "#007acc",
			"accent-hover":      "#005a9e",
			"heading-color":     "#267f99",
			"h1-color":          "#0066cc",
			"h2-color":          "#267f99",
			"h3-color":          "#795e26",
			"h4-color":          "#0066cc",
			"h5-color":          "#af00db",
			"h6-color":          "#6e6e6e",
			"code-bg":           "#f5f5f5",
			"code-color":        "#a31515",
			"link-color":        "#0066cc",
			"blockquote-border": "#007acc",
			"blockquote-bg":     "#f5f5f5",
			"table-border":      "#d4d4d4",
			"table-header-bg":   "#e8e8e8",
			"list-marker":       "#0066cc",
			"hr-color":          "#d4d4d4",
		},
	}
}

// BuiltinTheme returns a built-in theme by name, for use when no workspace
// folder is open.
func BuiltinTheme(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	}
	return Theme{}, fmt.Errorf("theme %q not available without an open folder", name)
}

func writeBuiltinThemes(builtinDir string) error {
	for _, theme := range []Theme{DarkTheme(), LightTheme()} {
		path := filepath.Join(builtinDir, strings.ToLower(theme.Name)+".json")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := writeJSON(path, theme); err != nil {
			return fmt.Errorf("write %s theme: %w", theme.Name, err)
		}
	}
	return nil
}

// LoadTheme loads a theme by name from the workspace, checking built-in
// themes before custom ones. An unknown name produces an error carrying a
// fuzzy "did you mean" suggestion when one is close enough.
func LoadTheme(folder, name string) (Theme, error) {
	loomDir, err := Dir(folder)
	if err != nil {
		return Theme{}, err
	}

	for _, kind := range []string{"built-in", "custom"} {
		path := filepath.Join(loomDir, "themes", kind, name+".json")
		if _, err := os.Stat(path); err == nil {
			return readThemeFile(path)
		}
	}

	available, _ := ListThemes(folder)
	if ranked := fuzzy.Find(name, available); len(ranked) > 0 {
		return Theme{}, fmt.Errorf("theme %q not found (did you mean %q?)", name, ranked[0].Str)
	}
	return Theme{}, fmt.Errorf("theme %q not found", name)
}

// ListThemes returns the names of all built-in and custom themes in the
// workspace.
func ListThemes(folder string) ([]string, error) {
	loomDir, err := Dir(folder)
	if err != nil {
		return nil, err
	}

	var themes []string
	for _, kind := range []string{"built-in", "custom"} {
		entries, err := os.ReadDir(filepath.Join(loomDir, "themes", kind))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read %s themes: %w", kind, err)
		}
		for _, entry := range entries {
			if name, ok := strings.CutSuffix(entry.Name(), ".json"); ok {
				themes = append(themes, name)
			}
		}
	}
	return themes, nil
}

// ImportTheme copies an external theme file into the workspace's custom
// themes, converting YAML to the stored JSON form when needed. It returns
// the imported theme's name.
func ImportTheme(folder, sourcePath string) (string, error) {
	loomDir, err := Dir(folder)
	if err != nil {
		return "", err
	}

	theme, err := readThemeFile(sourcePath)
	if err != nil {
		return "", err
	}
	if theme.Name == "" {
		return "", fmt.Errorf("theme file %s has no name", sourcePath)
	}

	name := strings.ToLower(theme.Name)
	dest := filepath.Join(loomDir, "themes", "custom", name+".json")
	if err := writeJSON(dest, theme); err != nil {
		return "", fmt.Errorf("import theme: %w", err)
	}
	return name, nil
}

// ExportTheme writes a workspace theme to an external path as pretty JSON.
func ExportTheme(folder, name, destPath string) error {
	theme, err := LoadTheme(folder, name)
	if err != nil {
		return err
	}
	if err := writeJSON(destPath, theme); err != nil {
		return fmt.Errorf("export theme: %w", err)
	}
	return nil
}

// readThemeFile parses a theme from disk. JSON is the native format; .yaml
// and .yml files are accepted for import convenience.
func readThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}

	var theme Theme
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &theme); err != nil {
			return Theme{}, fmt.Errorf("parse theme file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &theme); err != nil {
			return Theme{}, fmt.Errorf("parse theme file %s: %w", path, err)
		}
	}
	return theme, nil
}
