package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"iconwings/clipboard"
	"iconwings/doctor"
	"iconwings/icon"
	"iconwings/log"
	"iconwings/shutdown"
	"iconwings/typeface"
)

var version = "dev"

// sizes are rendered in this order on every run.
var sizes = []int{16, 48, 128}

const icoName = "icon.ico"

// checkDrawing is replaced in tests.
var checkDrawing = icon.Check

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("iconwings", flag.ContinueOnError)
	outFlag := fs.String("out", ".", "Output directory for icon<size>.png files")
	fontFlag := fs.String("font", typeface.DefaultName, "Preferred label font file name or path")
	styleFlag := fs.String("style", string(icon.StyleClassic), "Icon style: classic or gradient")
	icoFlag := fs.Bool("ico", false, "Also write "+icoName+" holding every size")
	copyFlag := fs.Bool("copy", false, "Copy the generated file paths to the clipboard")
	previewFlag := fs.Bool("preview", false, "Show the icons in the terminal instead of writing files")
	guiFlag := fs.Bool("gui", false, "Show the icons in a desktop window (build with -tags gui)")
	doctorFlag := fs.Bool("doctor", false, "Run system diagnostics and exit")
	setupFlag := fs.Bool("setup", false, "Install the label font with the system package manager and exit")
	logPathFlag := fs.String("logpath", "", "Diagnostic log directory (off unless set here or in $"+log.EnvPath+")")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "iconwings %s\n", version)
		return 0
	}

	if log.Requested(*logPathFlag) {
		logPath, err := log.ResolveDir(*logPathFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
			return 1
		}
		log.SetDir(logPath)
		if err := log.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
		}
		defer log.Close()
	}

	style, err := icon.ParseStyle(*styleFlag)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	opts := icon.Options{
		Style:    style,
		Font:     *fontFlag,
		FontDirs: typeface.DefaultDirs(),
	}

	if *doctorFlag {
		return doctor.Run(stdout, doctor.Options{Font: opts.Font, FontDirs: opts.FontDirs, OutDir: *outFlag})
	}

	if *setupFlag {
		if err := doctor.Setup(stdout, doctor.ExecRunner); err != nil {
			log.Errorf("setup: %v", err)
			fmt.Fprintf(stdout, "Setup failed: %v\n", err)
			return 1
		}
		log.Info("setup finished")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Please run the program again after installation.")
		return 0
	}

	if *previewFlag {
		return runPreview(opts)
	}
	if *guiFlag {
		return runGUI(opts)
	}

	ctx, stop := shutdown.Context(context.Background())
	defer stop()

	con := newConsole(stdout)
	log.RunStart(version, string(style), *outFlag, sizes)
	paths, err := generate(ctx, con, *outFlag, opts, *icoFlag)
	log.RunEnd(len(paths), err)
	if err != nil {
		if errors.Is(err, icon.ErrDrawingUnavailable) {
			con.fail(fmt.Sprintf("Drawing support is not available: %v", err))
			con.println("Run 'iconwings -setup' to install what is missing.")
			con.println("")
			con.println("Please run the program again after installation.")
			return 1
		}
		con.fail(fmt.Sprintf("Error creating icons: %v", err))
		return 1
	}

	con.println("")
	con.success("All icons created successfully!")

	if *copyFlag {
		copyPaths(paths)
	}
	return 0
}

// generate renders every size into dir. It stops at the first failure or
// when ctx is canceled; files written before that stay on disk.
func generate(ctx context.Context, con *console, dir string, opts icon.Options, withICO bool) ([]string, error) {
	if err := checkDrawing(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var paths []string
	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return paths, fmt.Errorf("interrupted: %w", err)
		}
		path, err := renderIcon(dir, size, opts)
		if err != nil {
			return paths, err
		}
		con.created(path)
		paths = append(paths, path)
	}

	if withICO {
		path := filepath.Join(dir, icoName)
		if err := writeICO(path, opts); err != nil {
			return paths, err
		}
		con.created(path)
		paths = append(paths, path)
	}
	return paths, nil
}

// writeICO bundles every size into one container. Rendering is
// deterministic, so each entry shows the same pixels as its PNG file.
func writeICO(path string, opts icon.Options) error {
	imgs := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		img, _, err := icon.Render(size, opts)
		if err != nil {
			return err
		}
		imgs = append(imgs, img)
	}
	return icon.WriteICO(path, imgs)
}

func renderIcon(dir string, size int, opts icon.Options) (string, error) {
	start := time.Now()
	rep, err := icon.WriteFile(dir, size, opts)
	if err != nil {
		return "", err
	}

	if rep.Text && rep.FontSource == typeface.Fallback {
		log.Warnf("label font fallback for %s: %s", rep.Path, rep.FontReason)
	}
	log.IconRendered(log.IconMetrics{
		Size:        size,
		Path:        rep.Path,
		Bytes:       rep.Bytes,
		BorderWidth: rep.BorderWidth,
		Text:        rep.Text,
		FontSource:  rep.FontSource.String(),
		FontPath:    rep.FontPath,
		FontReason:  rep.FontReason,
		RenderMs:    float64(time.Since(start).Microseconds()) / 1000,
	})
	return rep.Path, nil
}

func copyPaths(paths []string) {
	if clipboard.Unsupported() {
		fmt.Fprintln(os.Stderr, "Warning: clipboard is not available on this system")
		return
	}
	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		if a, err := filepath.Abs(p); err == nil {
			p = a
		}
		abs = append(abs, p)
	}
	if err := clipboard.CopyPaths(abs); err != nil {
		log.Warnf("clipboard copy failed: %v", err)
		fmt.Fprintf(os.Stderr, "Warning: clipboard copy failed: %v\n", err)
	}
}
