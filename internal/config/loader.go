package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadResult contains the loaded config and metadata about the load.
type LoadResult struct {
	Config     Config
	SourcePath string // config file that was applied, empty if none
}

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	// Exists returns true if the path exists and is a file (not a directory).
	Exists(path string) bool
}

// OSFileSystem implements FileSystem using the real OS.
type OSFileSystem struct{}

// Exists returns true if the path exists and is a file (not a directory).
func (OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Loader handles configuration loading and merging.
type Loader struct {
	fs     FileSystem
	getenv func(string) string
}

// NewLoader creates a new Loader with the given FileSystem and
// environment lookup.
func NewLoader(fs FileSystem, getenv func(string) string) *Loader {
	return &Loader{fs: fs, getenv: getenv}
}

// NewDefaultLoader creates a new Loader backed by the real OS.
func NewDefaultLoader() *Loader {
	return NewLoader(OSFileSystem{}, os.Getenv)
}

// Load merges defaults, the optional config file, and environment
// overrides, in that order. The credential is read once here; it never
// refreshes for the lifetime of the process.
func (l *Loader) Load(path string) (LoadResult, error) {
	cfg := DefaultConfig()
	var sourcePath string

	if path != "" {
		if !l.fs.Exists(path) {
			return LoadResult{}, fmt.Errorf("config file %s does not exist", path)
		}

		metadata, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return LoadResult{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
			log.Warn("unknown config keys", "path", path, "keys", undecoded)
		}

		sourcePath = path
	}

	if token := l.getenv("GITHUB_TOKEN"); token != "" {
		cfg.GitHub.Token = token
	}
	if addr := l.getenv("PR_RELAY_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if level := l.getenv("PR_RELAY_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return LoadResult{}, fmt.Errorf("invalid config: %w", err)
	}

	return LoadResult{
		Config:     cfg,
		SourcePath: sourcePath,
	}, nil
}
