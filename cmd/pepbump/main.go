package main

import (
	"github.com/pepbump/pepbump/pkg/cli"
)

func main() {
	cli.Execute()
}
