package main

import "github.com/nvelasco/taskmaster-cli/cmd"

func main() {
	cmd.Execute()
}
