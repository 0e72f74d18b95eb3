package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputJSON marshals v as indented JSON to stdout, or exits 1 if
// marshaling fails.
func outputJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, `{"error": "failed to marshal JSON: %v"}`+"\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
