package cmd

import (
	"errors"
	"fmt"
	"os"

	"fastcat.org/go/relkit/config"
	"fastcat.org/go/relkit/internal"
)

func Main() {
	internal.LockCustomizations()
	config.Initialize()
	if err := Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		ec := 1
		var ece ExitCodeErr
		if errors.As(err, &ece) {
			ec = ece.ExitCode()
		}
		os.Exit(ec)
	}
}

type ExitCodeErr interface {
	ExitCode() int
}
