// Command homebiz is the homebiz command-line interface.
package main

import "github.com/mesh-intelligence/homebiz/internal/cli"

func main() {
	cli.Execute()
}
