// Command taskman is an interactive single-user task tracker.
package main

import "github.com/mesh-intelligence/taskman/internal/cli"

func main() {
	cli.Execute()
}
