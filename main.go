package main

import "umdev/cmd"

func main() {
	cmd.Execute()
}
