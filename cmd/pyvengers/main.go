package main

import (
	"fmt"
	"os"

	"github.com/cadre-oss/pyvengers/internal/cli"
	apperrors "github.com/cadre-oss/pyvengers/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if s := apperrors.Suggestion(err); s != "" {
			fmt.Fprintln(os.Stderr, "  →", s)
		}
		os.Exit(1)
	}
}
