package loader

import (
	"bufio"
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"zoo-food-costs/internal/model"

	"golang.org/x/text/encoding/ianaindex"
)

// minDietFields is the number of fields a diet row needs to be considered at all.
// Shorter rows are skipped, not rejected.
const minDietFields = 3

// parsePrices reads newline-delimited name=value pairs. Every line, blank ones
// included, must carry the separator.
func parsePrices(r io.Reader, resource string) (model.PriceTable, error) {
	prices := make(model.PriceTable)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		name, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			return nil, model.ParseError(resource, "line %d: missing '=' separator", lineNo)
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, model.ParseError(resource, "line %d: invalid price %q", lineNo, strings.TrimSpace(value))
		}

		prices[strings.TrimSpace(name)] = price
	}

	if err := scanner.Err(); err != nil {
		return nil, model.IOError(resource, err)
	}

	return prices, nil
}

// parseDietTable reads species;rate;kind[;meat%] rows.
func parseDietTable(r io.Reader, resource string) (model.DietTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	diets := make(model.DietTable)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, model.ParseError(resource, "%v", parseErr)
			}
			return nil, model.IOError(resource, err)
		}

		if len(record) < minDietFields {
			continue
		}

		line, _ := reader.FieldPos(0)
		spec, err := parseDietRow(record, resource, line)
		if err != nil {
			return nil, err
		}
		diets[spec.Species] = spec
	}

	return diets, nil
}

func parseDietRow(record []string, resource string, line int) (model.DietSpec, error) {
	species := strings.TrimSpace(record[0])

	rate, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil || rate < 0 {
		return model.DietSpec{}, model.ParseError(resource, "line %d: invalid rate %q for %s", line, record[1], species)
	}

	kind, ok := model.ParseDietKind(record[2])
	if !ok {
		return model.DietSpec{}, model.ParseError(resource, "line %d: unknown diet kind %q for %s", line, record[2], species)
	}

	spec := model.DietSpec{
		Species: species,
		Rate:    rate,
		Kind:    kind,
	}

	if kind != model.DietMixed {
		return spec, nil
	}

	if len(record) <= minDietFields || strings.TrimSpace(record[3]) == "" {
		return model.DietSpec{}, model.ParseError(resource, "line %d: missing meat percentage for %s", line, species)
	}

	pct := strings.TrimSuffix(strings.TrimSpace(record[3]), "%")
	percentage, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
	if err != nil {
		return model.DietSpec{}, model.ParseError(resource, "line %d: invalid meat percentage %q for %s", line, record[3], species)
	}

	fraction := percentage / 100
	if fraction < 0 || fraction > 1 {
		return model.DietSpec{}, model.ParseError(resource, "line %d: meat percentage %q out of range for %s", line, record[3], species)
	}
	spec.MeatFraction = fraction

	return spec, nil
}

// Census element depths: the root element, its groups, and the animals inside them.
const (
	depthRoot   = 1
	depthGroup  = 2
	depthAnimal = 3
)

// weightAttr is the census attribute holding an animal's weight in kilograms.
const weightAttr = "kg"

// censusEntries streams the animals of an XML census document. Elements nested
// below the animal level are ignored. Malformed documents end the sequence with
// an error; a malformed weight is attached to its entry instead.
func censusEntries(r io.Reader, resource string) iter.Seq2[model.CensusEntry, error] {
	return func(yield func(model.CensusEntry, error) bool) {
		input := &recordingReader{r: r}
		decoder := xml.NewDecoder(input)
		decoder.CharsetReader = charsetReader
		depth := 0
		sawRoot := false

		for {
			token, err := decoder.Token()
			if errors.Is(err, io.EOF) {
				if !sawRoot {
					yield(model.CensusEntry{}, model.ParseError(resource, "no root element"))
				}
				return
			}
			if err != nil {
				// Anything the decoder reports that did not come from the
				// underlying reader is a problem with the document itself.
				if input.err != nil {
					err = model.IOError(resource, err)
				} else {
					err = model.ParseError(resource, "%v", err)
				}
				yield(model.CensusEntry{}, err)
				return
			}

			switch el := token.(type) {
			case xml.StartElement:
				depth++
				if depth == depthRoot {
					sawRoot = true
				}
				if depth != depthAnimal {
					continue
				}

				if !yield(censusEntry(el, resource, decoder), nil) {
					return
				}
			case xml.EndElement:
				depth--
			}
		}
	}
}

func censusEntry(el xml.StartElement, resource string, decoder *xml.Decoder) model.CensusEntry {
	entry := model.CensusEntry{Species: el.Name.Local}
	line, _ := decoder.InputPos()

	for _, attr := range el.Attr {
		if attr.Name.Local != weightAttr {
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
		if err != nil || weight < 0 {
			entry.WeightErr = model.ParseError(resource, "line %d: invalid weight %q for %s", line, attr.Value, entry.Species)
			return entry
		}
		entry.WeightKg = weight
		return entry
	}

	entry.WeightErr = model.ParseError(resource, "line %d: %s has no %s attribute", line, entry.Species, weightAttr)
	return entry
}

// charsetReader decodes census documents that declare a non-UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// recordingReader remembers the first read failure of the wrapped reader so
// decoder errors can be told apart from transport errors.
type recordingReader struct {
	r   io.Reader
	err error
}

func (r *recordingReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && r.err == nil {
		r.err = err
	}
	return n, err
}
