package main

import "tripdeck/cmd"

func main() {
	cmd.Execute()
}
