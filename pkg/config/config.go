// Package config resolves the optional weft.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = "weft.yaml"

// Defaults applied by Resolve.
const (
	DefaultTickRate     = 50 * time.Millisecond
	DefaultTemplateDir  = "templates"
	DefaultRootTemplate = "main"
	DefaultTemplateExt  = ".yaml"
	defaultAppName      = "weft_app"
)

// Config represents the optional weft.yaml configuration.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Runtime   RuntimeConfig   `yaml:"runtime"`
	Templates TemplatesConfig `yaml:"templates"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// RuntimeConfig contains driver settings.
type RuntimeConfig struct {
	TickRate string `yaml:"tick_rate,omitempty"`
	Verbose  bool   `yaml:"verbose,omitempty"`
	Mouse    bool   `yaml:"mouse,omitempty"`
}

// TemplatesConfig locates the component templates.
type TemplatesConfig struct {
	Dir   string `yaml:"dir,omitempty"`
	Root  string `yaml:"root,omitempty"`
	Watch bool   `yaml:"watch,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root         string
	ModulePath   string
	AppName      string
	TickRate     time.Duration
	Verbose      bool
	Mouse        bool
	TemplateDir  string
	RootTemplate string
	Watch        bool
}

// LoadOptional reads weft.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads weft.yaml (if present) and resolves defaults. A missing
// go.mod is allowed; the app name then comes from the directory.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultName(modulePath, dir)
	}

	tickRate := DefaultTickRate
	if s := strings.TrimSpace(cfg.Runtime.TickRate); s != "" {
		tickRate, err = time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid runtime.tick_rate %q: %w", s, err)
		}
		if tickRate < 0 {
			return nil, fmt.Errorf("invalid runtime.tick_rate %q: must not be negative", s)
		}
	}

	templateDir := strings.TrimSpace(cfg.Templates.Dir)
	if templateDir == "" {
		templateDir = DefaultTemplateDir
	}
	if !filepath.IsAbs(templateDir) {
		templateDir = filepath.Join(dir, templateDir)
	}

	rootTemplate := strings.TrimSpace(cfg.Templates.Root)
	if rootTemplate == "" {
		rootTemplate = DefaultRootTemplate
	}

	return &Resolved{
		Root:         dir,
		ModulePath:   modulePath,
		AppName:      appName,
		TickRate:     tickRate,
		Verbose:      cfg.Runtime.Verbose,
		Mouse:        cfg.Runtime.Mouse,
		TemplateDir:  templateDir,
		RootTemplate: rootTemplate,
		Watch:        cfg.Templates.Watch,
	}, nil
}

// TemplateFiles lists the template files in the resolved template
// directory, keyed by template name (the file name without extension).
// A missing directory yields no templates.
func (r *Resolved) TemplateFiles() (map[string]string, error) {
	entries, err := os.ReadDir(r.TemplateDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read template dir: %w", err)
	}
	files := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != DefaultTemplateExt {
			continue
		}
		name := strings.TrimSuffix(e.Name(), DefaultTemplateExt)
		files[name] = filepath.Join(r.TemplateDir, e.Name())
	}
	return files, nil
}

// FindProjectRoot walks up from the current directory to find go.mod or
// weft.yaml.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range []string{"go.mod", FileName} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a weft project (no go.mod or %s found)", FileName)
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return defaultAppName
	}
	return base
}
