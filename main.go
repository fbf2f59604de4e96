package main

import "dltime-cli/cmd"

func main() {
	cmd.Execute()
}
