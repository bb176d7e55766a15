package main

import "github.com/ionut-t/sift/cmd"

func main() {
	cmd.Execute()
}
