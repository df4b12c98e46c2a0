package main

import "github.com/colwise/cli/cmd"

func main() {
	cmd.Execute()
}
