// Package testsvc holds the generated bindings of the test service, which
// exercises every value shape the generator supports.
package testsvc

//go:generate go run ../../../cmd/qmigen generate --config ../../../qmigen.toml
