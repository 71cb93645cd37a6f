// Package main is the entry point for the seqalign CLI.
package main

func main() {
	Execute()
}
