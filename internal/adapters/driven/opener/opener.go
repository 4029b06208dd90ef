// Package opener provides the browser and clipboard side effects of a
// locked document.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
	"github.com/custodia-labs/haste-cli/internal/logger"
)

// Ensure System implements the interface.
var _ driven.Opener = (*System)(nil)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// System opens URLs with the platform's default handler and copies text to
// the system clipboard.
type System struct {
	goos  string
	start func(name string, args ...string) error
	write func(text string) error
}

// New creates an opener for the running platform.
func New() *System {
	return &System{
		goos:  runtime.GOOS,
		start: startCommand,
		write: clipboard.WriteAll,
	}
}

// Open opens url in the default browser without waiting for it.
func (s *System) Open(url string) error {
	name, args, err := openCommand(s.goos, url)
	if err != nil {
		return err
	}
	logger.Debug("opener: %s %v", name, args)
	return s.start(name, args...)
}

// Copy places text on the system clipboard.
func (s *System) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unsupported on %s", s.goos)
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// openCommand returns the command that opens url on goos.
func openCommand(goos, url string) (string, []string, error) {
	switch goos {
	case osDarwin:
		return "open", []string{url}, nil
	case osLinux:
		return "xdg-open", []string{url}, nil
	case osWindows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

func startCommand(name string, args ...string) error {
	return startDetached(exec.Command(name, args...), nil)
}

// startDetached starts cmd and reaps it in the background. done, when set,
// receives the exit error.
func startDetached(cmd *exec.Cmd, done chan<- error) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		err := cmd.Wait()
		if err != nil {
			logger.Debug("opener: %s: %v", cmd.Path, err)
		}
		if done != nil {
			done <- err
		}
	}()
	return nil
}
