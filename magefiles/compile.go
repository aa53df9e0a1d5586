package main

import (
	"context"
	"fmt"

	"fastcat.org/go/relkit/magefiles/shx"
)

func Compile(ctx context.Context) error {
	fmt.Println("Compile: go build")
	return shx.Run(ctx, "go", "build", "-v", "./...")
}

func Build(ctx context.Context) error {
	fmt.Println("Build: relkit binary")
	return shx.Run(ctx, "go", "build", "-ldflags=-s -w", "-o", "relkit", ".")
}
