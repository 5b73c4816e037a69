// Command snakesladders solves, generates and draws Snakes-and-Ladders boards.
package main

import "github.com/katalvlaran/snakesladders/internal/cli"

func main() {
	cli.Execute()
}
