// Package paths provides centralized path handling for redirmap.
// It resolves the content root, locates per-locale redirect tables, and
// implements XDG Base Directory specification compliance for the tool's
// own data, config, and cache directories.
package paths

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/redirmap/pkg/errors"
	"github.com/arthur-debert/redirmap/pkg/locales"
)

// Environment variable names
const (
	// EnvContentRoot is the primary environment variable for the content root
	EnvContentRoot = "CONTENT_ROOT"

	// EnvRedirmapDataDir overrides the XDG data directory for redirmap
	EnvRedirmapDataDir = "REDIRMAP_DATA_DIR"

	// EnvRedirmapConfigDir overrides the XDG config directory for redirmap
	EnvRedirmapConfigDir = "REDIRMAP_CONFIG_DIR"

	// EnvRedirmapCacheDir overrides the XDG cache directory for redirmap
	EnvRedirmapCacheDir = "REDIRMAP_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: These constants define where redirect tables live inside a
// content root and are NOT user-configurable. Tables written anywhere else
// would be invisible to every other tool that reads the corpus.
const (
	// RedirmapDirName is the directory name for redirmap-specific files
	RedirmapDirName = "redirmap"

	// TableFileName is the per-locale redirect table file name
	TableFileName = "_redirects.txt"

	// ConfigFileName is the name of the project configuration file
	ConfigFileName = ".redirmap.toml"

	// LogFileName is the name of the log file
	LogFileName = "redirmap.log"
)

// Paths provides centralized path management for redirmap
type Paths interface {
	ContentRoot() string
	UsedFallback() bool
	LocaleDir(locale string) string
	TablePath(locale string) string
	ConfigFilePath() string
	DataDir() string
	ConfigDir() string
	CacheDir() string
	LogFilePath() string
	NormalizePath(path string) (string, error)
}

type paths struct {
	// contentRoot is the root directory of the documentation corpus
	contentRoot string

	// xdgData is the XDG data directory
	xdgData string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgCache is the XDG cache directory
	xdgCache string

	// xdgState is the XDG state directory
	xdgState string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given content root.
// If contentRoot is empty, it will be determined from environment
// variables or defaults.
func New(contentRoot string) (Paths, error) {
	p := &paths{}

	if contentRoot == "" {
		root, usedFallback, err := findContentRoot()
		if err != nil {
			return nil, err
		}
		p.contentRoot = root
		p.usedFallback = usedFallback
	} else {
		p.contentRoot = expandHome(contentRoot)
		p.usedFallback = false
	}

	absRoot, err := filepath.Abs(p.contentRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for content root")
	}
	p.contentRoot = absRoot

	if err := p.setupXDGDirs(); err != nil {
		return nil, err
	}

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() error {
	if dataDir := os.Getenv(EnvRedirmapDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, RedirmapDirName)
	}

	if configDir := os.Getenv(EnvRedirmapConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, RedirmapDirName)
	}

	if cacheDir := os.Getenv(EnvRedirmapCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, RedirmapDirName)
	}

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, RedirmapDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", RedirmapDirName)
	}

	return nil
}

// findContentRoot determines the content root using the following priority:
// 1. CONTENT_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
//
// The function returns:
// - string: The resolved content root path
// - bool: Whether the current working directory was used as fallback
// - error: Any error that occurred during resolution
//
// This lets redirmap work in three common scenarios:
// - Explicit configuration via CONTENT_ROOT
// - Automatic detection when run from within a git-managed content repo
// - Fallback to current directory for quick testing or non-git setups
func findContentRoot() (string, bool, error) {
	if root := os.Getenv(EnvContentRoot); root != "" {
		return expandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		if os.Getenv("REDIRMAP_DEBUG") != "" {
			fmt.Fprintf(os.Stderr, "Debug: findContentRoot using git root: %s\n", gitRoot)
		}
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")

	output, err := cmd.Output()
	if err != nil {
		// Git command failed - not in a git repo or git not installed
		if os.Getenv("REDIRMAP_DEBUG") != "" {
			fmt.Fprintf(os.Stderr, "Debug: git command failed: %v\n", err)
		}
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}

	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ContentRoot returns the root directory of the documentation corpus
func (p *paths) ContentRoot() string {
	return p.contentRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// LocaleDir returns the directory holding a locale's content. Locale
// directories on disk are always lowercase regardless of canonical casing.
func (p *paths) LocaleDir(locale string) string {
	return filepath.Join(p.contentRoot, locales.Dir(locale))
}

// TablePath returns the path to a locale's redirect table file
func (p *paths) TablePath(locale string) string {
	return filepath.Join(p.LocaleDir(locale), TableFileName)
}

// ConfigFilePath returns the path to the project configuration file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.contentRoot, ConfigFileName)
}

// DataDir returns the XDG data directory for redirmap
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for redirmap
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// CacheDir returns the XDG cache directory for redirmap
func (p *paths) CacheDir() string {
	return p.xdgCache
}

// LogFilePath returns the path to the redirmap log file
// Respects XDG_STATE_HOME if set
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := expandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}
