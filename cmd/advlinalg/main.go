// Package main provides the adv-linalg CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("adv-linalg %s\n", version)
		return
	}

	fmt.Println("adv-linalg - Container algebra for linear-algebra primitives")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
}
