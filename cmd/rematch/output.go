// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/rematch/matching"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type resultDoc struct {
	Axis    string        `yaml:"axis"`
	Matched int           `yaml:"matched"`
	Matches []resultEntry `yaml:"matches"`
}

// resultEntry leaves Counterpart nil (YAML null) for unmatched subjects.
type resultEntry struct {
	Subject     int  `yaml:"subject"`
	Counterpart *int `yaml:"counterpart"`
}

func newResultDoc(axis matching.Axis, res matching.Matches) resultDoc {
	doc := resultDoc{Axis: axis.String(), Matched: res.Count(), Matches: make([]resultEntry, len(res))}
	for i, m := range res {
		doc.Matches[i].Subject = i
		if k, ok := m.Index(); ok {
			k := k
			doc.Matches[i].Counterpart = &k
		}
	}
	return doc
}

// render writes res to w as "subject -> counterpart" lines or as YAML.
func render(w io.Writer, format string, axis matching.Axis, res matching.Matches) error {
	switch format {
	case formatText:
		for i, m := range res {
			if _, err := fmt.Fprintf(w, "%d -> %s\n", i, m); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newResultDoc(axis, res)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatText, formatYAML)
	}
}
