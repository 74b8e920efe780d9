package dataset

import (
	"strings"

	"github.com/pkg/errors"
)

// ============================================================================
// DATASET SELECTOR - The three fixed healthcare datasets
// ============================================================================
// Each identifier is also the file name on disk. The input space is closed:
// the UI only ever offers these three values.
// ============================================================================

// ID identifies one dataset and doubles as its CSV file name.
type ID string

const (
	Maternal  ID = "Maternal Health Risk Data Set.csv"
	Fetal     ID = "fetal_health.csv"
	SmartBelt ID = "smart_pregnancy_belt_dataset_100.csv"
)

var all = []ID{Maternal, Fetal, SmartBelt}

var labels = map[ID]string{
	Maternal:  "Maternal Health Risk",
	Fetal:     "Fetal Health (CTG)",
	SmartBelt: "Smart Pregnancy Belt",
}

// All returns the identifiers in display order.
func All() []ID {
	out := make([]ID, len(all))
	copy(out, all)
	return out
}

// Default is the first identifier in display order.
func Default() ID { return all[0] }

// Parse maps user input to an identifier. Empty input selects the default.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default(), nil
	}
	for _, id := range all {
		if string(id) == s {
			return id, nil
		}
	}
	return "", errors.Errorf("unknown dataset %q", s)
}

// FileName is the CSV file backing the dataset.
func (id ID) FileName() string { return string(id) }

// Label is a human title for the dataset.
func (id ID) Label() string {
	if l, ok := labels[id]; ok {
		return l
	}
	return string(id)
}

// IsDefault reports whether id is the selector default.
func (id ID) IsDefault() bool { return id == Default() }

func (id ID) String() string { return string(id) }
