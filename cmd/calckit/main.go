package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/calckit/pkg/config"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
