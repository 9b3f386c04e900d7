// Package capture provides sources of participant-panel screenshots: a file
// on disk, stdin, or an interactive region grab via the platform screenshot
// tool.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrCanceled indicates the user aborted region selection. Callers treat it
// as a no-op, not a failure.
var ErrCanceled = errors.New("capture canceled")

// Source produces PNG-encoded image bytes for one submission.
type Source interface {
	Capture(ctx context.Context) ([]byte, error)
}

// FileSource reads a previously captured image from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Capture(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return data, nil
}

// StdinSource reads image bytes from standard input, for piping from other
// capture tooling.
type StdinSource struct {
	Reader io.Reader
}

func (s StdinSource) Capture(ctx context.Context) ([]byte, error) {
	r := s.Reader
	if r == nil {
		r = os.Stdin
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image from stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("no image data on stdin")
	}
	return data, nil
}

// ScreenSource grabs a user-selected screen region by shelling out to the
// platform screenshot tool. Aborting the selection (ESC) yields ErrCanceled.
type ScreenSource struct {
	// runRegion runs the screenshot tool and writes the selected region to
	// the given path. Nil selects the platform tool.
	runRegion func(ctx context.Context, out string) error
}

func (s ScreenSource) Capture(ctx context.Context) ([]byte, error) {
	tmp, err := os.MkdirTemp("", "rollcall-capture-")
	if err != nil {
		return nil, fmt.Errorf("failed to create capture dir: %w", err)
	}
	defer os.RemoveAll(tmp)
	out := filepath.Join(tmp, "region.png")

	run := s.runRegion
	if run == nil {
		run = runRegionCommand
	}

	if err := run(ctx, out); err != nil {
		// The selection tools exit non-zero when the user presses ESC.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, ErrCanceled
		}
		return nil, fmt.Errorf("screenshot tool failed: %w", err)
	}

	data, err := os.ReadFile(out)
	if err != nil || len(data) == 0 {
		// macOS screencapture exits 0 on ESC but writes nothing.
		return nil, ErrCanceled
	}
	return data, nil
}

func runRegionCommand(ctx context.Context, out string) error {
	cmd, err := regionCommand(ctx, out)
	if err != nil {
		return err
	}
	return cmd.Run()
}

func regionCommand(ctx context.Context, out string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.CommandContext(ctx, "screencapture", "-i", "-s", out), nil
	case "linux":
		if _, err := exec.LookPath("gnome-screenshot"); err == nil {
			return exec.CommandContext(ctx, "gnome-screenshot", "-a", "-f", out), nil
		}
		if _, err := exec.LookPath("grim"); err == nil {
			// grim needs a slurp-selected geometry; run through a shell so
			// slurp's cancellation propagates as a non-zero exit.
			return exec.CommandContext(ctx, "sh", "-c", fmt.Sprintf(`grim -g "$(slurp)" %q`, out)), nil
		}
		return nil, errors.New("no region screenshot tool found (tried gnome-screenshot, grim)")
	default:
		return nil, fmt.Errorf("interactive capture is not supported on %s; pass an image file instead", runtime.GOOS)
	}
}
