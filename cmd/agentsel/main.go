// Package main provides the agentsel CLI: it selects the minimal set of
// agent profiles for a described project and synthesizes the derived
// rules, context, and prompt artifacts.
package main

func main() {
	Execute()
}
