//go:build mage

// Package main provides build targets for snakesladders using Mage.
//
// Usage:
//
//	mage build      Compile the snakesladders binary to bin/
//	mage test       Run all tests with the race detector
//	mage bench      Run benchmarks for the solver packages
//	mage lint       Run golangci-lint
//	mage sample     Generate five boards and solve them with the built binary
//	mage clean      Remove build artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "snakesladders"
	binaryDir  = "bin"
	cmdDir     = "./cmd/snakesladders"
	binGo      = "go"
	binLint    = "golangci-lint"
)

var binaryPath = filepath.Join(binaryDir, binaryName)

// Build compiles the snakesladders binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", binaryPath, cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Bench runs the board, bfs and solver benchmarks.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem",
		"./core/...", "./bfs/...", "./solver/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Sample builds the binary, generates five seeded boards and solves them.
func Sample() error {
	mg.Deps(Build)
	cases, err := sh.Output(binaryPath, "generate", "--seed", "1", "--count", "5")
	if err != nil {
		return err
	}
	in := filepath.Join(binaryDir, "sample.txt")
	if err := os.WriteFile(in, []byte(cases+"\n"), 0o644); err != nil {
		return err
	}
	out, err := sh.Output(binaryPath, "solve", in)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	return sh.Rm(binaryDir)
}
