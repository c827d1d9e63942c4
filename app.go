package main

import (
	"github.com/masmgr/git-report/cmd"
)

func main() {
	cmd.Run()
}
