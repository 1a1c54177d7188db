// Command courier runs a single dispatch over the line-oriented text
// format: base cost and packages on stdin (or a file), priced and scheduled
// results on stdout.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"courier-dispatch-service/internal/services"
	"courier-dispatch-service/internal/textio"
)

func main() {
	log.SetFlags(0)

	inputPath := flag.String("input", "-", "input file path, or - for stdin")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	req, err := textio.ParseRequest(in)
	if err != nil {
		log.Fatal(err)
	}

	plan, err := services.PlanDispatch(services.DispatchRequest{
		Packages: req.Packages,
		Vehicles: req.Vehicles,
		BaseCost: req.BaseCost,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := textio.WriteResults(os.Stdout, plan.Results); err != nil {
		log.Fatal(err)
	}
}
