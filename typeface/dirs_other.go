//go:build !windows

package typeface

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDirs lists the directories searched for system fonts.
func DefaultDirs() []string {
	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		dirs := []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	}

	var dirs []string
	xdgData := os.Getenv("XDG_DATA_HOME")
	if xdgData == "" && home != "" {
		xdgData = filepath.Join(home, ".local", "share")
	}
	if xdgData != "" {
		dirs = append(dirs, filepath.Join(xdgData, "fonts"))
	}
	if home != "" {
		dirs = append(dirs, filepath.Join(home, ".fonts"))
	}
	return append(dirs, "/usr/local/share/fonts", "/usr/share/fonts")
}
