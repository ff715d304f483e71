// Package main is the entry point for the platform registry gRPC server.
package main

import (
	"github.com/pipestream-ai/platform-registry/internal/server"
)

func main() {
	server.Run()
}
