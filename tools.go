//go:build tools

// Package tools pins build-time tool dependencies.
//
// Run `go run github.com/vektra/mockery/v2` from the repo root to
// regenerate mocks per .mockery.yaml.
package tools

import (
	_ "github.com/vektra/mockery/v2"
)
