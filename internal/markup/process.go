package markup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Process renders markup by piping it through an external engine such as NME.
// The engine reads markup on stdin and writes HTML to stdout; its stderr is
// appended to ErrorLog and never inspected.
type Process struct {
	Path     string
	Args     []string
	ErrorLog string
	Timeout  time.Duration
	Logger   *logrus.Logger
}

// NewProcess returns a Process renderer for the engine at path.
func NewProcess(path string, args []string, errorLog string, timeout time.Duration, log *logrus.Logger) *Process {
	return &Process{
		Path:     path,
		Args:     append([]string(nil), args...),
		ErrorLog: errorLog,
		Timeout:  timeout,
		Logger:   log,
	}
}

// Render runs the engine once for raw. Output from a failed run is discarded.
func (p *Process) Render(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	stderr, closeStderr := p.openErrorLog()
	defer closeStderr()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, p.Path, p.Args...)
	// exec feeds stdin from its own goroutine and closes it once raw is
	// written, while stdout drains concurrently.
	cmd.Stdin = strings.NewReader(raw)
	cmd.Stdout = &stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = time.Second

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("%w: start %s: %v", ErrRenderUnavailable, p.Path, err)
	}

	if err := cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, p.Path, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s exited with code %d", ErrRenderFailed, p.Path, exitErr.ExitCode())
		}
		return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, p.Path, err)
	}

	if p.Logger != nil {
		p.Logger.WithFields(logrus.Fields{
			"engine":   p.Path,
			"input":    len(raw),
			"output":   stdout.Len(),
			"duration": time.Since(started),
		}).Debug("markup rendered")
	}

	return stdout.String(), nil
}

func (p *Process) openErrorLog() (io.Writer, func()) {
	if p.ErrorLog == "" {
		return io.Discard, func() {}
	}

	f, err := os.OpenFile(p.ErrorLog, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		if p.Logger != nil {
			p.Logger.WithError(err).WithField("path", p.ErrorLog).Warn("cannot open markup engine error log")
		}
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
