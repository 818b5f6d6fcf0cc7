// cmd/matchctl/main.go
package main

import (
	"os"

	"internship-matcher/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
