//go:build !testcoverage

package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fatal("load .env: %v", err)
	}

	if err := run(os.Args, DefaultConfig()); err != nil {
		fatal("%v", err)
	}
}
