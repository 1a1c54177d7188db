// Package textio implements the line-oriented plain-text boundary format
// used for batch runs:
//
//	<baseCost> <packageCount>
//	<id> <weight> <distance> [<offerCode>]   (packageCount lines)
//	<vehicleCount> <maxSpeed> <maxCarriableWeight>
//
// Output is one line per package, in input order:
//
//	<id> <discount> <totalCost> <estimatedDeliveryTime>
//
// with discount and total cost rounded to the nearest integer and the
// delivery time printed with two decimals.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"courier-dispatch-service/internal/domain"
)

// Request is the parsed batch input: a base delivery cost, the packages to
// price and schedule, and a homogeneous fleet.
type Request struct {
	BaseCost float64
	Packages []domain.Package
	Vehicles []domain.Vehicle
}

// ParseRequest reads the boundary format. Blank lines are ignored; anything
// else malformed is an error naming the offending line.
func ParseRequest(r io.Reader) (*Request, error) {
	lines := newLineReader(r)

	header, err := lines.next()
	if err != nil {
		return nil, fmt.Errorf("parse request: header: %w", err)
	}
	if len(header.fields) != 2 {
		return nil, fmt.Errorf("parse request: line %d: want <baseCost> <packageCount>", header.number)
	}
	baseCost, err := parseFloat(header.fields[0], "base cost", header.number)
	if err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}
	count, err := strconv.Atoi(header.fields[1])
	if err != nil || count < 0 {
		return nil, fmt.Errorf("parse request: line %d: invalid package count %q", header.number, header.fields[1])
	}

	packages := make([]domain.Package, 0, count)
	for i := 0; i < count; i++ {
		line, err := lines.next()
		if err != nil {
			return nil, fmt.Errorf("parse request: package %d of %d: %w", i+1, count, err)
		}
		if len(line.fields) != 3 && len(line.fields) != 4 {
			return nil, fmt.Errorf("parse request: line %d: want <id> <weight> <distance> [<offerCode>]", line.number)
		}

		weight, err := parseFloat(line.fields[1], "weight", line.number)
		if err != nil {
			return nil, fmt.Errorf("parse request: %w", err)
		}
		distance, err := parseFloat(line.fields[2], "distance", line.number)
		if err != nil {
			return nil, fmt.Errorf("parse request: %w", err)
		}

		pkg := domain.Package{ID: line.fields[0], WeightKg: weight, DistanceKm: distance}
		if len(line.fields) == 4 {
			pkg.OfferCode = line.fields[3]
		}
		packages = append(packages, pkg)
	}

	fleet, err := lines.next()
	if err != nil {
		return nil, fmt.Errorf("parse request: fleet: %w", err)
	}
	if len(fleet.fields) != 3 {
		return nil, fmt.Errorf("parse request: line %d: want <vehicleCount> <maxSpeed> <maxCarriableWeight>", fleet.number)
	}
	vehicleCount, err := strconv.Atoi(fleet.fields[0])
	if err != nil || vehicleCount < 0 {
		return nil, fmt.Errorf("parse request: line %d: invalid vehicle count %q", fleet.number, fleet.fields[0])
	}
	maxSpeed, err := parseFloat(fleet.fields[1], "max speed", fleet.number)
	if err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}
	maxLoad, err := parseFloat(fleet.fields[2], "max carriable weight", fleet.number)
	if err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}

	vehicles := make([]domain.Vehicle, 0, vehicleCount)
	for i := 0; i < vehicleCount; i++ {
		vehicles = append(vehicles, domain.Vehicle{ID: i + 1, MaxSpeedKmh: maxSpeed, MaxLoadKg: maxLoad})
	}

	return &Request{BaseCost: baseCost, Packages: packages, Vehicles: vehicles}, nil
}

// WriteResults renders delivery results in the boundary output format, one
// package per line in the order given.
func WriteResults(w io.Writer, results []domain.DeliveryResult) error {
	for _, r := range results {
		_, err := fmt.Fprintf(w, "%s %s %s %.2f\n",
			r.PackageID, r.Discount.Round(0), r.TotalCost.Round(0), r.DeliveryAt)
		if err != nil {
			return fmt.Errorf("write results: package %s: %w", r.PackageID, err)
		}
	}
	return nil
}

type line struct {
	number int
	fields []string
}

type lineReader struct {
	scanner *bufio.Scanner
	number  int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns the fields of the next non-blank line.
func (lr *lineReader) next() (line, error) {
	for lr.scanner.Scan() {
		lr.number++
		fields := strings.Fields(lr.scanner.Text())
		if len(fields) == 0 {
			continue
		}
		return line{number: lr.number, fields: fields}, nil
	}
	if err := lr.scanner.Err(); err != nil {
		return line{}, err
	}
	return line{}, errors.New("unexpected end of input")
}

func parseFloat(s, name string, lineNumber int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q", lineNumber, name, s)
	}
	return v, nil
}
