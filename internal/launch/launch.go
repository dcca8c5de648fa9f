// Package launch starts external programs without waiting for them.
package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/godalming123/tinytile/internal/logger"
)

var ErrEmptyCommand = errors.New("empty command")

// Launcher runs shell commands detached from the compositor's session.
type Launcher struct {
	shell string
	log   *log.Logger

	// exited receives the wait error of every child, for tests
	exited func(cmd string, err error)
}

// New returns a launcher using /bin/sh.
func New() *Launcher {
	return &Launcher{shell: "/bin/sh", log: logger.For("launch")}
}

// Run starts cmd with `sh -c` in its own session and returns once the child
// has been spawned. The child inherits the compositor's environment and is
// reaped in the background.
func (l *Launcher) Run(cmd string) error {
	if strings.TrimSpace(cmd) == "" {
		return ErrEmptyCommand
	}

	c := exec.Command(l.shell, "-c", cmd)
	configureCommand(c)

	if err := c.Start(); err != nil {
		return fmt.Errorf("failed to start %q: %w", cmd, err)
	}
	l.log.Debug("launched", "cmd", cmd, "pid", c.Process.Pid)

	go func() {
		err := c.Wait()
		if err != nil {
			l.log.Debug("child exited", "cmd", cmd, "err", err)
		}
		if l.exited != nil {
			l.exited(cmd, err)
		}
	}()
	return nil
}
