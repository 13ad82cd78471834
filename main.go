package main

import "github.com/grove-tools/litbuild/cmd"

func main() {
	cmd.Execute()
}
