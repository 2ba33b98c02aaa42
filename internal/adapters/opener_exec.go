package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"appbar/internal/ports"
)

// ExecOpener hands a location to a launcher command such as `open` (macOS)
// or `xdg-open`. The command is started, not waited on, and outlives ctx.
type ExecOpener struct {
	Command string
	Args    []string
	start   func(ctx context.Context, name string, args ...string) error
}

func NewExecOpener(command string, args ...string) ExecOpener {
	return ExecOpener{Command: command, Args: args, start: startCommand}
}

func (o ExecOpener) Open(ctx context.Context, location string) error {
	if strings.TrimSpace(location) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("location is empty")
	}
	if err := ctx.Err(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("open canceled").
			WithCause(err)
	}
	start := o.start
	if start == nil {
		start = startCommand
	}
	args := append(append([]string(nil), o.Args...), location)
	if err := start(ctx, o.Command, args...); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to launch " + o.Command).
			WithCause(err)
	}
	return nil
}

func startCommand(_ context.Context, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// OpenerChain tries each opener in order and returns on the first success.
type OpenerChain []ports.OpenerPort

func (c OpenerChain) Open(ctx context.Context, location string) error {
	var lastErr error
	for _, opener := range c {
		if ctx.Err() != nil {
			break
		}
		err := opener.Open(ctx, location)
		if err == nil {
			return nil
		}
		if errbuilder.CodeOf(err) == errbuilder.CodeInvalidArgument {
			return err
		}
		lastErr = err
	}
	if lastErr == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("no opener configured")
	}
	return lastErr
}

// NewPlatformOpener selects the launcher for goos.
func NewPlatformOpener(goos string) ports.OpenerPort {
	if goos == "darwin" {
		return NewExecOpener("open")
	}
	return OpenerChain{NewPortalOpener(), NewExecOpener("xdg-open")}
}

var (
	_ ports.OpenerPort = ExecOpener{}
	_ ports.OpenerPort = OpenerChain{}
)
