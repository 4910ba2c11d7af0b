package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/diegoabmdev/mi-ecommerce-sub000/pkg/validate"
)

// CLI for auditing the persisted collection blobs in a data directory.
func main() {
	dir := flag.String("dir", "./data", "data directory holding the collection blobs")
	flag.Parse()

	summary, err := validate.ValidateDir(validate.NewStoreValidator(), *dir, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
