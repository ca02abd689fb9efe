package main

import "github.com/riadafridishibly/dotscan/cmd"

func main() {
	cmd.Execute()
}
