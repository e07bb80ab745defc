//go:build tools
// +build tools

// Package tools pins the code generators run through go generate (mockgen for
// the contract mocks) so that go.mod tracks them.
package sharemyshows_live

import (
	_ "go.uber.org/mock/mockgen"
)
