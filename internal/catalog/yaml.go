package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"reifscan/internal/logging"
)

// extensionFile is the YAML document shape for catalog extensions:
//
//	metaphors:
//	  - term: scarcity
//	    reified_as: absolute lack
//	    functional_form: distribution pattern variable
//	    value_range: [abundant, sufficient, maldistributed, scarce]
//	    depends_on: [allocation_system]
//	    institutional_function: justifies rationing and gatekeeping
//	    detection_patterns: ['\bscarcity\b', '\bscarce\b']
//	chains:
//	  - term: scarcity
//	    forces: [competition, ownership]
type extensionFile struct {
	Metaphors []extensionEntry `yaml:"metaphors"`
	Chains    []extensionChain `yaml:"chains"`
}

type extensionEntry struct {
	Term                  string   `yaml:"term"`
	ReifiedAs             string   `yaml:"reified_as"`
	FunctionalForm        string   `yaml:"functional_form"`
	ValueRange            []string `yaml:"value_range"`
	DependsOn             []string `yaml:"depends_on"`
	InstitutionalFunction string   `yaml:"institutional_function"`
	DetectionPatterns     []string `yaml:"detection_patterns"`
}

type extensionChain struct {
	Term   string   `yaml:"term"`
	Forces []string `yaml:"forces"`
}

// LoadYAML merges a catalog-extension document into the builder. Entries
// are validated exactly like Add; the first invalid entry aborts the load.
func (b *Builder) LoadYAML(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read catalog extension: %w", err)
	}
	var ext extensionFile
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return fmt.Errorf("parse catalog extension: %w", err)
	}

	for _, m := range ext.Metaphors {
		entry := Entry{
			Term:                  m.Term,
			ReifiedAs:             m.ReifiedAs,
			FunctionalForm:        m.FunctionalForm,
			ValueRange:            m.ValueRange,
			DependsOn:             m.DependsOn,
			InstitutionalFunction: m.InstitutionalFunction,
			DetectionPatterns:     m.DetectionPatterns,
		}
		if err := b.Add(entry); err != nil {
			return err
		}
	}
	for _, ch := range ext.Chains {
		if ch.Term == "" {
			return fmt.Errorf("catalog extension chain missing term")
		}
		b.AddChain(ch.Term, ch.Forces)
	}

	logging.Catalog("catalog extension loaded: %d metaphors, %d chains",
		len(ext.Metaphors), len(ext.Chains))
	return nil
}

// LoadYAMLFile merges a catalog-extension file into the builder.
func (b *Builder) LoadYAMLFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog extension: %w", err)
	}
	defer f.Close()
	return b.LoadYAML(f)
}
