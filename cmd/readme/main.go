package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/getmentor/readme-generator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// field errors are already printed
		if !errors.Is(err, cli.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
