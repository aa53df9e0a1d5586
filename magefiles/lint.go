package main

import (
	"context"
	"fmt"

	"fastcat.org/go/relkit/magefiles/shx"
)

func Lint(ctx context.Context) error {
	fmt.Println("Lint: go vet")
	return shx.Run(ctx, "go", "vet", "./...")
}
