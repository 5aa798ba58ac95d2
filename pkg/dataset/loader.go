// Package dataset loads the evaluation corpus: one CSV row per news article
// with a variable set of generated-summary columns.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/ingunnnaevdal/masterevaluering/pkg/selector"
)

// Required article columns. Everything else containing the summary marker is
// treated as a candidate summary variant.
var requiredColumns = []string{"uuid", "title", "byline", "creation_date", "lead_text", "artikkeltekst"}

// Article is one immutable row of the dataset.
type Article struct {
	UUID         string
	Title        string
	Byline       string
	CreationDate string
	LeadText     string
	BodyText     string
	// Summaries maps summary column name to its text. Columns with an empty
	// cell are absent.
	Summaries map[string]string
}

// Dataset holds the loaded corpus in file order.
type Dataset struct {
	Articles []Article
}

// Len returns the number of articles.
func (d *Dataset) Len() int {
	return len(d.Articles)
}

// Article returns the row at idx.
func (d *Dataset) Article(idx int) (*Article, error) {
	if idx < 0 || idx >= len(d.Articles) {
		return nil, fmt.Errorf("article index %d out of range [0, %d)", idx, len(d.Articles))
	}
	return &d.Articles[idx], nil
}

// Load reads the CSV at path. A missing file or malformed CSV is returned as
// an error and no partial dataset is produced; the caller treats this as
// fatal before serving anything.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // validated against the header below

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("dataset %s missing required column %q", path, name)
		}
	}

	articles := make([]Article, 0, len(records)-1)
	for line, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("dataset %s row %d has %d fields, header has %d", path, line+2, len(record), len(header))
		}
		a := Article{
			UUID:         record[col["uuid"]],
			Title:        record[col["title"]],
			Byline:       record[col["byline"]],
			CreationDate: record[col["creation_date"]],
			LeadText:     record[col["lead_text"]],
			BodyText:     record[col["artikkeltekst"]],
			Summaries:    make(map[string]string),
		}
		for i, name := range header {
			name = strings.TrimSpace(name)
			if !selector.IsSummaryColumn(name) {
				continue
			}
			if text := strings.TrimSpace(record[i]); text != "" {
				a.Summaries[name] = text
			}
		}
		articles = append(articles, a)
	}

	return &Dataset{Articles: articles}, nil
}
