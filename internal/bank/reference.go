package bank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rana718/fakebank/internal/synth"
)

// CityRegion is one row of the domestic city to region reference table.
type CityRegion struct {
	City   string
	Region string
}

// LoadCityRegions reads the reference table at path.
func LoadCityRegions(path string) ([]CityRegion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open city reference: %v", synth.ErrConfiguration, err)
	}
	defer f.Close()

	rows, err := ReadCityRegions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ReadCityRegions parses a CSV with a city,region header.
func ReadCityRegions(r io.Reader) ([]CityRegion, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: city reference is empty", synth.ErrConfiguration)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read city reference header: %v", synth.ErrConfiguration, err)
	}
	cityCol, regionCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "city":
			cityCol = i
		case "region":
			regionCol = i
		}
	}
	if cityCol < 0 || regionCol < 0 {
		return nil, fmt.Errorf("%w: city reference header must contain city and region, got %v", synth.ErrConfiguration, header)
	}

	var out []CityRegion
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: city reference: %v", synth.ErrConfiguration, err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) <= cityCol || len(record) <= regionCol {
			return nil, fmt.Errorf("%w: city reference line %d: missing columns", synth.ErrConfiguration, line)
		}
		city := strings.TrimSpace(record[cityCol])
		region := strings.TrimSpace(record[regionCol])
		if city == "" || region == "" {
			return nil, fmt.Errorf("%w: city reference line %d: empty city or region", synth.ErrConfiguration, line)
		}
		out = append(out, CityRegion{City: city, Region: region})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: city reference has no rows", synth.ErrConfiguration)
	}
	return out, nil
}
