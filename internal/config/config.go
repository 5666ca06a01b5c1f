package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/dshills/code-review/internal/diag"
	"github.com/spf13/viper"
)

// Environment variables read by code-review.
const (
	EnvGuidelinePath = "CODE_REVIEW_GUIDELINE_PATH"
	EnvLogLevel      = "CODE_REVIEW_LOG_LEVEL"
)

// Config is the resolved configuration for one run. It is immutable; the
// accessors return copies.
type Config struct {
	output        string
	guidelineDirs []string
	inputs        []string
}

// Output returns the output file path, or "" for standard output.
func (c Config) Output() string {
	return c.output
}

// GuidelineDirs returns the guideline directories in search order.
func (c Config) GuidelineDirs() []string {
	return slices.Clone(c.guidelineDirs)
}

// Inputs returns the files to review in command-line order.
func (c Config) Inputs() []string {
	return slices.Clone(c.inputs)
}

// Flags holds the values taken from the command line.
type Flags struct {
	Output        string
	GuidelineDirs []string
	Inputs        []string
}

// Sources holds every input to [Resolve].
type Sources struct {
	Flags
	EnvGuidelinePath  string
	FileGuidelineDirs []string
	WorkDir           string
}

// Resolve merges the sources into a Config.
func Resolve(src Sources) (Config, error) {
	if len(src.Inputs) == 0 {
		return Config{}, diag.Usagef("no input files specified")
	}
	if slices.Contains(src.GuidelineDirs, "") {
		return Config{}, diag.Usagef("guideline directory must not be empty")
	}

	dirs := mergeDirs(src.GuidelineDirs, filepath.SplitList(src.EnvGuidelinePath), src.FileGuidelineDirs)
	if len(dirs) == 0 {
		dirs = []string{src.WorkDir}
	}

	return Config{
		output:        src.Output,
		guidelineDirs: dirs,
		inputs:        slices.Clone(src.Inputs),
	}, nil
}

// mergeDirs concatenates the lists, skipping empty entries and keeping only
// the first occurrence of each cleaned path.
func mergeDirs(lists ...[]string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, list := range lists {
		for _, d := range list {
			if d == "" {
				continue
			}
			d = filepath.Clean(d)
			if seen[d] {
				continue
			}
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Env holds the environment variables code-review reads.
type Env struct {
	GuidelinePath string
	LogLevel      string
}

// ReadEnv reads the code-review environment variables.
func ReadEnv() Env {
	v := viper.New()
	_ = v.BindEnv("guideline-path", EnvGuidelinePath)
	_ = v.BindEnv("log-level", EnvLogLevel)
	return Env{
		GuidelinePath: v.GetString("guideline-path"),
		LogLevel:      v.GetString("log-level"),
	}
}

// ConfigDir returns the platform-appropriate config directory for code-review.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "code-review"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "code-review"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "code-review"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "code-review"), nil
	default:
		return filepath.Join(home, ".config", "code-review"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// FileConfig is the content of the config file.
type FileConfig struct {
	GuidelineDirs []string
}

// LoadFile loads the config file at path. A missing file yields a zero
// FileConfig. Relative guideline directories are taken relative to the
// file's own directory.
func LoadFile(path string) (FileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, diag.New(diag.KindUsage, "cannot read config file", path, err)
	}

	var cfg FileConfig
	for _, d := range v.GetStringSlice("guideline-dirs") {
		if d != "" && !filepath.IsAbs(d) {
			d = filepath.Join(filepath.Dir(path), d)
		}
		cfg.GuidelineDirs = append(cfg.GuidelineDirs, d)
	}
	return cfg, nil
}

// Load builds the effective config from the command-line flags, the
// environment, the config file and the working directory.
func Load(flags Flags) (Config, error) {
	env := ReadEnv()

	var file FileConfig
	if path, err := ConfigPath(); err == nil {
		file, err = LoadFile(path)
		if err != nil {
			return Config{}, err
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return Config{}, diag.New(diag.KindUsage, "cannot determine working directory", "", err)
	}

	return Resolve(Sources{
		Flags:             flags,
		EnvGuidelinePath:  env.GuidelinePath,
		FileGuidelineDirs: file.GuidelineDirs,
		WorkDir:           wd,
	})
}
