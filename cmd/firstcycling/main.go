// Package main provides the entry point for the firstcycling CLI.
package main

func main() {
	Execute()
}
