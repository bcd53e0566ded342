package main

import "github.com/VeryAmazed/Digest/cmd"

func main() {
	cmd.Execute()
}
