// Package dms holds the generated bindings of the QMI Device Management
// Service subset described in data/qmi-service-dms.yaml.
package dms

//go:generate go run ../../../cmd/qmigen generate --config ../../../qmigen.toml
