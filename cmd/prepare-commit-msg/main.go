package main

import (
	"os"

	"github.com/wahlandcase/task-hook/internal/cli"
	"github.com/wahlandcase/task-hook/internal/hook"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(cli.Execute(version, os.Args[1:], hook.OSStdio()))
}
