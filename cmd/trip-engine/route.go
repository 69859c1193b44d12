// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tobrien/trip-engine/internal/extract"
)

// sampleSentences is the fixed set the harness runs when no arguments are
// given. It covers both rules and the qualifier boundary.
var sampleSentences = []string{
	"from dallas to las vegas",
	"I want to go from dallas to las vegas for 5 days with my family",
	"go from dallas to las vegas",
	"travel from new york to los angeles",
}

var routeCmd = &cobra.Command{
	Use:   "route [sentence...]",
	Short: "Debug the origin/destination rules against sample sentences",
	Long: `Route runs the two ordered origin/destination rules over each sentence
and prints what they captured. With no arguments it runs a fixed set of
sample sentences. The output format is a diagnostic aid, not a stable
interface; use parse for machine-readable results.`,
	RunE: runRoute,
}

func runRoute(cmd *cobra.Command, args []string) error {
	sentences := args
	if len(sentences) == 0 {
		sentences = sampleSentences
	}

	for _, sentence := range sentences {
		printRoute(os.Stdout, sentence)
	}
	return nil
}

func printRoute(w io.Writer, sentence string) {
	fmt.Fprintf(w, "\nTesting: '%s'\n", sentence)

	route := extract.ExtractRoute(sentence)
	if route.Origin == "" {
		fmt.Fprintln(w, "No origin found")
	} else {
		fmt.Fprintf(w, "Origin: '%s'\n", route.Origin)
		if route.Destination != "" {
			fmt.Fprintf(w, "Destination: '%s'\n", route.Destination)
		}
	}

	fmt.Fprintf(w, "Result: origin=%s, destination=%s\n",
		quoteOrNone(route.Origin), quoteOrNone(route.Destination))
}

func quoteOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return "'" + s + "'"
}

func init() {
	rootCmd.AddCommand(routeCmd)
}
