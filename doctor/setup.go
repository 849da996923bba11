package doctor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Runner executes an external command.
type Runner func(name string, args ...string) error

// ExecRunner runs the command attached to the current terminal.
func ExecRunner(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd.Run()
}

type installer struct {
	tool string
	args []string
}

// installers lists, per GOOS, package manager commands that provide
// arial.ttf or a metric-compatible substitute known to typeface, in order of
// preference.
var installers = map[string][]installer{
	"linux": {
		{"apt-get", []string{"install", "-y", "ttf-mscorefonts-installer"}},
		{"dnf", []string{"install", "-y", "liberation-sans-fonts"}},
		{"pacman", []string{"-S", "--noconfirm", "--needed", "ttf-liberation"}},
		{"zypper", []string{"--non-interactive", "install", "fetchmsttfonts"}},
	},
	"darwin": {
		{"brew", []string{"install", "--cask", "font-liberation"}},
	},
}

var ErrNoInstaller = errors.New("no supported package manager found")

var (
	lookPath = exec.LookPath
	goos     = runtime.GOOS
)

func pickInstaller(platform string) (installer, error) {
	for _, inst := range installers[platform] {
		if _, err := lookPath(inst.tool); err == nil {
			return inst, nil
		}
	}
	return installer{}, fmt.Errorf("%w for %s", ErrNoInstaller, platform)
}

// Setup makes one best-effort attempt to install the label font through the
// platform package manager. It does not retry and does not render anything;
// the caller asks the user to run the program again.
func Setup(w io.Writer, run Runner) error {
	inst, err := pickInstaller(goos)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Installing fonts: %s %s\n", inst.tool, strings.Join(inst.args, " "))
	if err := run(inst.tool, inst.args...); err != nil {
		return fmt.Errorf("%s: %w", inst.tool, err)
	}
	return nil
}
