// Command leadcheck submits a test lead against a running submission
// endpoint and reports the outcome. Useful as a deploy smoke check.
//
// Usage:
//
//	go run ./scripts/leadcheck -url http://localhost:8080/api/submit-lead -email you@example.com
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/signflow/leadgen-platform/pkg/leadform"
	"github.com/signflow/leadgen-platform/pkg/logging"
)

func main() {
	var (
		url     = flag.String("url", "http://localhost:8080/api/submit-lead", "submission endpoint URL")
		email   = flag.String("email", "", "lead email (required)")
		name    = flag.String("name", "Smoke Test", "lead name")
		phone   = flag.String("phone", "", "lead phone")
		comment = flag.String("comment", "leadcheck smoke submission", "lead comment")
		source  = flag.String("source", "contact-form", "lead source tag")
		timeout = flag.Duration("timeout", 30*time.Second, "overall timeout")
	)
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "leadcheck: -email is required")
		flag.Usage()
		os.Exit(2)
	}

	logger := logging.New("info")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	form := leadform.New(*url, *source, logger)
	form.SetState(leadform.State{
		Name:    *name,
		Email:   *email,
		Phone:   *phone,
		Comment: *comment,
		Agreed:  true,
	})

	result, err := form.Submit(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "leadcheck: submission failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("leadcheck: ok (contactId=%s) %s\n", result.ContactID, result.Message)
}
