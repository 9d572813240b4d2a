package main

import "github.com/pezware/mirubato-tools/cmd"

func main() {
	cmd.Execute()
}
