package shx

import (
	"bytes"
	"os"
	"os/exec"
)

type Option interface {
	apply(*Cmd)
	applyExec(*exec.Cmd, *Result)
}

type optionCmdFunc func(*Cmd)

func (f optionCmdFunc) apply(c *Cmd) {
	f(c)
}
func (f optionCmdFunc) applyExec(cmd *exec.Cmd, res *Result) {}

type optionExecFunc func(cmd *exec.Cmd, res *Result)

func (f optionExecFunc) apply(c *Cmd) {}
func (f optionExecFunc) applyExec(cmd *exec.Cmd, res *Result) {
	f(cmd, res)
}

// WithCombinedError changes the behavior of Run to return all errors in the
// error return, instead of only returning errors starting the process there,
// and errors from the process in the Result.
func WithCombinedError() Option {
	return optionCmdFunc(func(c *Cmd) {
		c.combineExecErrors = true
	})
}

func WithCwd(path string) Option {
	return optionExecFunc(func(c *exec.Cmd, r *Result) {
		c.Dir = path
	})
}

func WithEnv(key, value string) Option {
	return optionCmdFunc(func(c *Cmd) {
		c.env[key] = value
	})
}

// CaptureOutput buffers the command's stdout for access via Result.
func CaptureOutput() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		res.stdout = &bytes.Buffer{}
		cmd.Stdout = res.stdout
	})
}

// CaptureCombined buffers the command's stdout and stderr interleaved into a
// single capture, for commands where diagnostics land on either stream.
func CaptureCombined() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		res.stdout = &bytes.Buffer{}
		cmd.Stdout = res.stdout
		cmd.Stderr = res.stdout
	})
}

// PassOutput sets the command's Stdout and Stderr to os.Stdout and os.Stderr
// respectively, and clears any prior capture configuration.
func PassOutput() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		res.stdout = nil
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	})
}

// PassStdio connects all three standard streams to the current process, for
// commands that interact with the user (e.g. spawning an editor).
func PassStdio() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		res.stdout = nil
		cmd.Stdout, cmd.Stderr, cmd.Stdin = os.Stdout, os.Stderr, os.Stdin
	})
}

