// Package main provides symgen, which generates compact storage types for
// tensors with symmetric and antisymmetric index groups.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

const version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
