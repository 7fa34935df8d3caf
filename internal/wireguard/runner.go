package wireguard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"

	"github.com/creack/pty"
)

// Runner executes a command and returns its standard output.
// Implementations can be swapped (os/exec, a pseudo-terminal, or a fake for tests).
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandError reports a command that could not start or exited non-zero.
type CommandError struct {
	Args   []string
	Output string // stderr, or the combined terminal output under a PTY
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands directly with os/exec.
type ExecRunner struct{}

// Ensure ExecRunner implements Runner.
var _ Runner = ExecRunner{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, &CommandError{Args: append([]string{name}, args...), Output: stderr.String(), Err: err}
	}
	return out, nil
}

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// ErrPasswordPrompt reports a command that stopped to ask for a password.
// Nothing can answer it from inside the TUI, so the command is killed.
var ErrPasswordPrompt = errors.New("password prompt (configure passwordless sudo for wg)")

// PTYRunner runs commands attached to a pseudo-terminal, for sudo setups
// that insist on a tty. Output is the terminal transcript with CRLF folded to LF.
type PTYRunner struct {
	Size Size
}

// Ensure PTYRunner implements Runner.
var _ Runner = PTYRunner{}

// Run implements Runner.
func (r PTYRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	argv := append([]string{name}, args...)
	size := r.Size
	if size.Rows == 0 || size.Cols == 0 {
		size = Size{Rows: 24, Cols: 200}
	}
	cmd := exec.CommandContext(ctx, name, args...)
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, &CommandError{Args: argv, Err: err}
	}
	defer f.Close()

	var out bytes.Buffer
	buf := make([]byte, 4096)
	for {
		n, readErr := f.Read(buf)
		out.Write(buf[:n])
		if isPasswordPrompt(out.Bytes()) {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
			return nil, &CommandError{Args: argv, Output: out.String(), Err: ErrPasswordPrompt}
		}
		if readErr == nil {
			continue
		}
		// Linux reports EIO on the master once the child side closes.
		if readErr != io.EOF && !errors.Is(readErr, syscall.EIO) {
			_ = cmd.Wait()
			return nil, &CommandError{Args: argv, Output: out.String(), Err: readErr}
		}
		break
	}
	transcript := bytes.ReplaceAll(out.Bytes(), []byte("\r\n"), []byte("\n"))
	if err := cmd.Wait(); err != nil {
		return nil, &CommandError{Args: argv, Output: string(transcript), Err: err}
	}
	return transcript, nil
}

// isPasswordPrompt reports whether the transcript ends waiting for a password,
// as sudo's "[sudo] password for user: " or "Password:" do.
func isPasswordPrompt(transcript []byte) bool {
	lines := strings.Split(strings.TrimRight(string(transcript), " \t"), "\n")
	last := strings.ToLower(strings.TrimSpace(lines[len(lines)-1]))
	return strings.HasSuffix(last, ":") && strings.Contains(last, "password")
}
