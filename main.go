package main

import "nelo-tasks.com/nelo-tasks/cmd"

func main() {
	cmd.Execute()
}
