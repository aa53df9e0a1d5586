package main

import (
	"context"

	"github.com/magefile/mage/mg"
)

var Default = All

func All(ctx context.Context) error {
	mg.CtxDeps(ctx, Lint, Compile, Test)
	return nil
}
