// Command search runs a one-shot Reed search from the terminal, useful for
// checking credentials and query shapes without the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hallgrim/jobsift/pkg/logging"
	"github.com/hallgrim/jobsift/pkg/reed"
)

func main() {
	var (
		keywords = flag.String("keywords", "", "search keywords")
		location = flag.String("location", "", "location name, e.g. London")
		distance = flag.Int("distance", 0, "search radius in miles (default 10, max 100)")
		remote   = flag.Bool("remote", false, "remote postings only")
		jobType  = flag.String("type", "", "full_time, part_time, contract or temporary")
		wanted   = flag.Int("n", 15, "number of postings to fetch")
		offset   = flag.Int("offset", 0, "postings to skip")
		details  = flag.String("details", "", "fetch the detail record for one job id and exit")
		logLevel = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	logger := logging.New(*logLevel)
	defer func() { _ = logger.Sync() }()

	client, err := reed.NewClient(reed.Config{Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *details != "" {
		detail, err := client.JobDetails(ctx, *details)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s at %s (%s)\nposted: %s  expires: %s\napplications: %d\n\n%s\n",
			detail.JobTitle, detail.EmployerName, detail.LocationName,
			detail.DatePosted, detail.ExpirationDate, detail.ApplicationCount,
			detail.JobDescription)
		return
	}

	jobs, err := client.Search(ctx, reed.SearchCriteria{
		Keywords:      *keywords,
		Location:      *location,
		Distance:      *distance,
		Remote:        *remote,
		JobType:       reed.JobType(*jobType),
		ResultsWanted: *wanted,
		Offset:        *offset,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for i, job := range jobs {
		salary := ""
		if comp := job.Compensation; comp != nil {
			switch {
			case comp.MinAmount != nil && comp.MaxAmount != nil:
				salary = fmt.Sprintf("  %s %.0f-%.0f/%s", comp.Currency, *comp.MinAmount, *comp.MaxAmount, comp.Interval)
			case comp.MinAmount != nil:
				salary = fmt.Sprintf("  %s %.0f+/%s", comp.Currency, *comp.MinAmount, comp.Interval)
			case comp.MaxAmount != nil:
				salary = fmt.Sprintf("  %s up to %.0f/%s", comp.Currency, *comp.MaxAmount, comp.Interval)
			}
		}
		locText := ""
		if job.Location != nil {
			locText = " - " + job.Location.City
			if job.Location.Region != "" {
				locText += ", " + job.Location.Region
			}
		}
		if job.Remote {
			locText += " [remote]"
		}
		fmt.Printf("%2d. %s @ %s%s%s\n    %s\n", i+1, job.Title, job.CompanyName, locText, salary, job.URL)
	}
	fmt.Printf("\n%d posting(s)\n", len(jobs))
}
