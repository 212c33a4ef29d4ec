package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"supergo/internal/source"
)

// generate_catalog dumps the built-in seed catalogue as a JSON document so
// it can be served through the file source backend (SOURCE_BACKEND=file) or
// uploaded to S3 for the s3 backend. Coupon and banner validity windows are
// anchored on the time of generation.
func main() {
	out := flag.String("out", "data/catalog.json", "output path for the catalogue document")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	data := source.SeedData(time.Now())
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalogue: %v", err)
	}

	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Printf("Wrote %s (%d products, %d coupons)\n", *out, len(data.Products), len(data.Coupons))
}
