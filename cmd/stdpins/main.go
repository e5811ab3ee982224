package main

import "github.com/requireiot/stdpins/cmd/stdpins/cmd"

func main() {
	cmd.Execute()
}
