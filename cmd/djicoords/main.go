// cmd/djicoords/main.go
package main

import (
	"github.com/bstardust/djicoords/internal/logger"
	"github.com/bstardust/djicoords/pkg/cli"
)

func main() {
	// Initialize logger
	logger.Init()

	// Execute CLI
	cli.Execute()
}
