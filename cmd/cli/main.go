package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/huskyplan/scheduler/internal/schedule"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the plan input file")
	outFilePathPtr := flag.String("out", "", "Path to the file where the generated variants will be written; if empty, they'll be written into the Standard Output")
	includeClosedPtr := flag.Bool("include-closed", false, "Include sessions that are full or inactive")
	includeCodesPtr := flag.Bool("include-codes", false, "Include sessions that require an add code or faculty code")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	// Extract input
	input, err := schedule.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	options := schedule.GenerationOptions{
		IncludeClosedSessions:        *includeClosedPtr,
		IncludeCoursesRequiringCodes: *includeCodesPtr,
	}

	// Generate every valid variant. The enumeration is exhaustive and
	// uncapped; pathologically large plans run to completion.
	variants := schedule.GenerateScheduleVariants(input, options)

	// Marshal output into json
	variantsJson, err := json.Marshal(variants)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(variantsJson))
	} else {
		err := os.WriteFile(outFile, variantsJson, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	fmt.Printf("Variants: %v\n", len(variants))
	if len(variants) == 0 {
		os.Exit(20)
	}
}
