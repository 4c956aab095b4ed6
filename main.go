package main

import "github.com/Bitlatte/showcase/cmd"

func main() {
	cmd.Execute()
}
