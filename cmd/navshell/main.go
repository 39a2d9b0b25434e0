package main

import "navshell/cmd/navshell/cmd"

func main() {
	cmd.Execute()
}
