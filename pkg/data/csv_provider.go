package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ducminhle1904/ga-solver/pkg/types"
)

// ErrNoRows is returned when a file holds no usable rows
var ErrNoRows = errors.New("data: no valid rows")

// CSVProvider implements InstanceProvider for CSV files
type CSVProvider struct {
	itemFormat CSVColumnMapping
	cityFormat CSVColumnMapping
}

// NewCSVProvider creates a new CSV provider with the default formats
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{
		itemFormat: DefaultItemFormat,
		cityFormat: DefaultCityFormat,
	}
}

// NewCSVProviderWithFormat creates a new CSV provider with custom column layouts
func NewCSVProviderWithFormat(itemFormat, cityFormat CSVColumnMapping) *CSVProvider {
	return &CSVProvider{
		itemFormat: itemFormat,
		cityFormat: cityFormat,
	}
}

// GetName returns the name of the provider
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadItems reads weight,value rows. Rows with a non-positive weight or a
// negative value are skipped with a warning.
func (p *CSVProvider) LoadItems(source string) ([]types.Item, error) {
	var items []types.Item
	err := p.readPairs(source, p.itemFormat, func(line int, first, second string) {
		weight, err := strconv.Atoi(first)
		if err != nil {
			log.Printf("⚠️ Invalid weight '%s' at line %d, skipping: %v", first, line, err)
			return
		}
		value, err := strconv.Atoi(second)
		if err != nil {
			log.Printf("⚠️ Invalid value '%s' at line %d, skipping: %v", second, line, err)
			return
		}
		if weight <= 0 || value < 0 {
			log.Printf("⚠️ Item out of range at line %d (weight %d, value %d), skipping", line, weight, value)
			return
		}
		items = append(items, types.Item{Weight: weight, Value: value})
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoRows, source)
	}
	return items, nil
}

// LoadCities reads x,y rows. Cities are numbered in file order starting at 0.
func (p *CSVProvider) LoadCities(source string) ([]types.Coordinate, error) {
	var cities []types.Coordinate
	err := p.readPairs(source, p.cityFormat, func(line int, first, second string) {
		x, err := strconv.ParseFloat(first, 64)
		if err != nil {
			log.Printf("⚠️ Invalid x '%s' at line %d, skipping: %v", first, line, err)
			return
		}
		y, err := strconv.ParseFloat(second, 64)
		if err != nil {
			log.Printf("⚠️ Invalid y '%s' at line %d, skipping: %v", second, line, err)
			return
		}
		cities = append(cities, types.Coordinate{ID: len(cities), X: x, Y: y})
	})
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoRows, source)
	}
	return cities, nil
}

// readPairs streams the two mapped columns of every row to fn.
// A first row whose mapped columns are not numeric is treated as a header.
func (p *CSVProvider) readPairs(filename string, format CSVColumnMapping, fn func(line int, first, second string)) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	lineNum := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("error reading CSV at line %d: %v", lineNum+1, err)
		}
		lineNum++

		if len(record) < format.MinColumns {
			log.Printf("⚠️ Insufficient columns at line %d (expected %d, got %d), skipping", lineNum, format.MinColumns, len(record))
			continue
		}

		first := strings.TrimSpace(record[format.FirstCol])
		second := strings.TrimSpace(record[format.SecondCol])
		if lineNum == 1 && !isNumeric(first) && !isNumeric(second) {
			continue
		}
		fn(lineNum, first, second)
	}

	return nil
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// ValidateItems checks loaded items before they reach a solver
func (p *CSVProvider) ValidateItems(items []types.Item) error {
	if len(items) == 0 {
		return fmt.Errorf("no items provided")
	}
	for i, item := range items {
		if item.Weight <= 0 {
			return fmt.Errorf("invalid item at index %d: weight must be positive, got %d", i, item.Weight)
		}
		if item.Value < 0 {
			return fmt.Errorf("invalid item at index %d: value cannot be negative, got %d", i, item.Value)
		}
	}
	return nil
}

// ValidateCities checks that city IDs are unique
func (p *CSVProvider) ValidateCities(cities []types.Coordinate) error {
	if len(cities) == 0 {
		return fmt.Errorf("no cities provided")
	}
	seen := make(map[int]int, len(cities))
	for i, c := range cities {
		if prev, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate city id %d at index %d (first seen at %d)", c.ID, i, prev)
		}
		seen[c.ID] = i
	}
	return nil
}
