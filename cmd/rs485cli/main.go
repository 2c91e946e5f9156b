package main

import (
	"github.com/picdaq/rs485.go/pkg/cli/sh"

	_ "github.com/picdaq/rs485.go/pkg/cli/cmds/node"
)

//go-build: CGO_ENABLED=0

func init() {
	sh.SetupFlags()
}

func main() {
	sh.Main()
}
