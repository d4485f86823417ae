// Package config resolves where rlaunch looks for shortcuts and how many
// matches it shows. Values come from platform defaults, an optional TOML
// file and RLAUNCH_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	fsutil "github.com/kk-code-lab/rlaunch/internal/fs"
	"github.com/kk-code-lab/rlaunch/internal/search"
)

const (
	envConfigPath = "RLAUNCH_CONFIG"
	envRoots      = "RLAUNCH_ROOTS"
	envExtension  = "RLAUNCH_EXT"
	envLimit      = "RLAUNCH_LIMIT"

	appDirName     = "rlaunch"
	configFileName = "config.toml"
)

// Config is the resolved launcher configuration.
type Config struct {
	Roots        []string `toml:"roots"`
	ExtraRoots   []string `toml:"extra_roots"`
	Extension    string   `toml:"extension"`
	Limit        int      `toml:"limit"`
	Icon         string   `toml:"icon"`
	SkipHidden   bool     `toml:"skip_hidden"`
	MatchBundles bool     `toml:"match_bundles"`

	// Source is the config file that was applied, if any.
	Source string `toml:"-"`
}

// Environment abstracts process state so resolution can be tested.
type Environment struct {
	GOOS          string
	Getenv        func(string) string
	HomeDir       string
	UserConfigDir string
}

// SystemEnvironment describes the running process.
func SystemEnvironment() Environment {
	home, _ := os.UserHomeDir()
	cfgDir, _ := os.UserConfigDir()
	return Environment{
		GOOS:          runtime.GOOS,
		Getenv:        os.Getenv,
		HomeDir:       home,
		UserConfigDir: cfgDir,
	}
}

// Default returns the platform defaults for env.
func Default(env Environment) Config {
	getenv := env.getenv()
	return Config{
		Roots:        fsutil.DefaultRootsFor(env.GOOS, getenv, env.HomeDir),
		Extension:    fsutil.ShortcutExt(env.GOOS),
		Limit:        search.DefaultLimit,
		Icon:         search.DefaultIconRef,
		SkipHidden:   false,
		MatchBundles: fsutil.BundleShortcuts(env.GOOS),
	}
}

// Load resolves the configuration. explicitPath, when set, must exist;
// otherwise RLAUNCH_CONFIG or the per-user config file is used if present.
func Load(explicitPath string) (Config, error) {
	return LoadWith(SystemEnvironment(), explicitPath)
}

// LoadWith is Load against an explicit environment.
func LoadWith(env Environment, explicitPath string) (Config, error) {
	getenv := env.getenv()
	cfg := Default(env)

	path, required := explicitPath, explicitPath != ""
	if path == "" {
		if p := getenv(envConfigPath); p != "" {
			path, required = p, true
		} else if env.UserConfigDir != "" {
			path = filepath.Join(env.UserConfigDir, appDirName, configFileName)
		}
	}

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			if required || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	cfg.applyEnv(getenv)
	cfg.Roots = expandRoots(append(cfg.Roots, cfg.ExtraRoots...), env.HomeDir)
	cfg.ExtraRoots = nil

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("parse config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if md.IsDefined("roots") {
		c.Roots = file.Roots
	}
	if md.IsDefined("extra_roots") {
		c.ExtraRoots = append(c.ExtraRoots, file.ExtraRoots...)
	}
	if md.IsDefined("extension") {
		c.Extension = file.Extension
	}
	if md.IsDefined("limit") {
		c.Limit = file.Limit
	}
	if md.IsDefined("icon") {
		c.Icon = file.Icon
	}
	if md.IsDefined("skip_hidden") {
		c.SkipHidden = file.SkipHidden
	}
	if md.IsDefined("match_bundles") {
		c.MatchBundles = file.MatchBundles
	}
	c.Source = path
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if roots := getenv(envRoots); roots != "" {
		c.Roots = filepath.SplitList(roots)
	}
	if ext := strings.TrimSpace(getenv(envExtension)); ext != "" {
		c.Extension = ext
	}
	c.Limit = parseEnvInt(getenv, envLimit, c.Limit)
}

// Validate reports configuration that would make every search come back empty.
func (c Config) Validate() error {
	if len(c.Roots) == 0 {
		return errors.New("config: no shortcut roots configured")
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("config: extension %q must start with a dot", c.Extension)
	}
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("config: extension %q must not contain a path separator", c.Extension)
	}
	if c.Limit < 1 {
		return fmt.Errorf("config: limit must be at least 1, got %d", c.Limit)
	}
	return nil
}

// SearchOptions converts the configuration into searcher options.
func (c Config) SearchOptions(logger *slog.Logger) search.Options {
	return search.Options{
		Extension:    c.Extension,
		Limit:        c.Limit,
		IconRef:      c.Icon,
		SkipHidden:   c.SkipHidden,
		MatchBundles: c.MatchBundles,
		Logger:       logger,
	}
}

// NewSearcher builds the searcher described by the configuration.
func (c Config) NewSearcher(logger *slog.Logger) *search.ShortcutSearcher {
	return search.NewShortcutSearcher(c.SearchOptions(logger))
}

func (env Environment) getenv() func(string) string {
	if env.Getenv != nil {
		return env.Getenv
	}
	return func(string) string { return "" }
}

// expandRoots resolves a leading "~" and drops blanks and duplicates while
// keeping the configured order.
func expandRoots(roots []string, home string) []string {
	seen := make(map[string]struct{}, len(roots))
	out := make([]string, 0, len(roots))
	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		if home != "" && (root == "~" || strings.HasPrefix(root, "~/") || strings.HasPrefix(root, `~\`)) {
			root = filepath.Join(home, root[1:])
		}
		root = filepath.Clean(root)
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		out = append(out, root)
	}
	return out
}

func parseEnvInt(getenv func(string) string, key string, fallback int) int {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
