package main

import "github.com/verdexapp/verdex/cmd"

func main() {
	cmd.Execute()
}
