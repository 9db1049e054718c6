package main

import "clockout/cmd"

func main() {
	cmd.Execute()
}
