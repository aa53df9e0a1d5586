package shx

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/magefile/mage/mg"
)

func Run(
	ctx context.Context,
	cmd string,
	args ...string,
) error {
	return Cmd(ctx, cmd, args...).Run()
}

func Cmd(
	ctx context.Context,
	command string,
	args ...string,
) *cmd {
	c := exec.CommandContext(ctx, command, args...)
	c.Env = os.Environ()
	c.Stdout, c.Stderr = nil, os.Stderr
	if mg.Verbose() {
		c.Stdout = os.Stdout
	}
	return (*cmd)(c)
}

type cmd exec.Cmd

// WithOutput makes the command always pass stdout even if not invoked with
// `mage -v`.
func (c *cmd) WithOutput() *cmd {
	c.Stdout = os.Stdout
	return c
}

func (c *cmd) Run() error {
	if mg.Verbose() {
		quoted := make([]string, 0, len(c.Args))
		for _, a := range c.Args {
			quoted = append(quoted, strconv.Quote(a))
		}
		log.Println("exec:", c.Path, strings.Join(quoted, " "))
	}
	err := (*exec.Cmd)(c).Run()
	if err != nil {
		name := filepath.Base(c.Path)
		if name == "go" && len(c.Args) > 0 {
			name += " " + c.Args[0]
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
