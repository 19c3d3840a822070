package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/takak2166/arc2bookmarks/internal/errors"
	"github.com/takak2166/arc2bookmarks/internal/netscape"
)

// SourceFileName is the file Arc keeps its sidebar state in
const SourceFileName = "StorableSidebar.json"

// DefaultOutput is written to the working directory unless overridden
const DefaultOutput = "bookmarks.html"

// Environment variables read by LoadEnv
const (
	EnvSource      = "ARC_SOURCE"
	EnvOutput      = "ARC_OUTPUT"
	EnvFolderTitle = "ARC_FOLDER_TITLE"
	EnvLogLevel    = "LOG_LEVEL"
)

// Config holds the resolved settings of a conversion run
type Config struct {
	Source      string `toml:"source"`
	Output      string `toml:"output"`
	FolderTitle string `toml:"folder_title"`
	LogLevel    string `toml:"log_level"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Source:      DefaultSourcePath(),
		Output:      DefaultOutput,
		FolderTitle: netscape.DefaultFolderTitle,
		LogLevel:    "info",
	}
}

// Load resolves settings from defaults, an optional TOML file, .env and the
// environment, and finally flags. Later layers win for non-empty values.
func Load(configFile string, flags Config) (Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.LoadEnv(); err != nil {
		return Config{}, err
	}

	cfg.Override(flags)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile applies the values set in a TOML file
func (c *Config) LoadFile(path string) error {
	var file Config
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to load config file %s", path)
	}
	c.Override(file)
	return nil
}

// LoadEnv loads the given .env files (".env" when none are given) into the
// process environment and applies the ARC_* and LOG_LEVEL variables.
// A missing .env file is not an error.
func (c *Config) LoadEnv(envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to load .env file")
	}

	c.Override(Config{
		Source:      os.Getenv(EnvSource),
		Output:      os.Getenv(EnvOutput),
		FolderTitle: os.Getenv(EnvFolderTitle),
		LogLevel:    os.Getenv(EnvLogLevel),
	})
	return nil
}

// Override copies every non-empty field of o into c
func (c *Config) Override(o Config) {
	if o.Source != "" {
		c.Source = o.Source
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.FolderTitle != "" {
		c.FolderTitle = o.FolderTitle
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate checks that both paths are known
func (c Config) Validate() error {
	if c.Source == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "source path is empty")
	}
	if c.Output == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output path is empty")
	}
	return nil
}

// DefaultSourcePath prefers a StorableSidebar.json placed beside the program or
// in the working directory, then falls back to Arc's application data directory.
func DefaultSourcePath() string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if p, ok := findSource(dirs...); ok {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return SourceFileName
	}
	return filepath.Join(arcDataDir(runtime.GOOS, home, os.Getenv("LOCALAPPDATA")), SourceFileName)
}

func findSource(dirs ...string) (string, bool) {
	for _, dir := range dirs {
		p := filepath.Join(dir, SourceFileName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// arcDataDir returns the directory Arc stores its sidebar state in
func arcDataDir(goos, home, localAppData string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Arc")
	case "windows":
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(localAppData, "Packages", "TheBrowserCompany.Arc_ttt1ap7aakyb4", "LocalCache", "Local", "Arc")
	default: // linux and others
		return filepath.Join(home, ".config", "Arc")
	}
}
