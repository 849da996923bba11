//go:build windows

package log

import (
	"fmt"
	"os"
	"path/filepath"
)

// getDefaultDir returns %LocalAppData%\iconwings\logs.
func getDefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate local app data: %w", err)
	}
	return filepath.Join(base, appName, "logs"), nil
}
