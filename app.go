package main

import "github.com/masmgr/contribgen-go/cmd"

func main() {
	cmd.Run()
}
