package main

import "github.com/wkalt/grouper/cli/cmd"

func main() {
	cmd.Execute()
}
