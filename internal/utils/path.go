package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppName names the config directory and default files.
const AppName = "wordfind"

// DefaultWordList is the file name searched for when no dictionary path is given.
var DefaultWordList = []string{"en_words.txt", "words.txt"}

// PathResolver locates the word list and config file relative to the
// executable, the working directory and the user config dir.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppName)
		}
		return filepath.Join(homeDir, ".config", AppName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppName)
	default:
		return filepath.Join(homeDir, ".config", AppName)
	}
}

// ConfigDir returns the config directory
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// ResolveWordList finds the dictionary file. It tries in order:
// 1. the user path as given (absolute or relative to cwd)
// 2. the user path relative to the executable dir
// 3. the default names in cwd, executable dir, exec/data and config/data
// An empty user path skips straight to 3. ok is false when nothing exists;
// the returned path is then the most likely candidate, for error reporting.
func (pr *PathResolver) ResolveWordList(userPath string) (path string, ok bool) {
	candidates := pr.candidates(userPath)
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			log.Debugf("Found word list: %s", c)
			return c, true
		}
		log.Debugf("Word list candidate not found: %s", c)
	}
	return candidates[0], false
}

func (pr *PathResolver) candidates(userPath string) []string {
	var out []string
	if userPath != "" {
		out = append(out, userPath)
		if !filepath.IsAbs(userPath) {
			out = append(out, filepath.Join(pr.executableDir, userPath))
		}
	}
	cwd, _ := os.Getwd()
	for _, name := range DefaultWordList {
		out = append(out,
			filepath.Join(cwd, name),
			filepath.Join(cwd, "data", name),
			filepath.Join(pr.executableDir, name),
			filepath.Join(pr.executableDir, "data", name),
			filepath.Join(pr.configDir, "data", name),
		)
	}
	return out
}
