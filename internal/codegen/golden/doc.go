// Package golden holds symgen output for ranks 0 to 4, checked in so that the
// generated code is compiled and tested like hand-written code. The codegen
// tests fail when these files drift from a fresh generator run.
package golden

//go:generate go run ../../../cmd/symgen generate --package golden --out . --min-rank 0 --max-rank 4
