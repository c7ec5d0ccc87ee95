package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// citiesFile is the YAML layout of CITIES_FILE:
//
//	cities:
//	  - name: chicago
//	    file: chicago.csv
type citiesFile struct {
	Cities []domain.CitySource `yaml:"cities"`
}

// LoadCities reads a city table from a YAML file. Names are lowercased;
// empty or duplicate names and entries without a file are rejected.
func LoadCities(path string) (domain.CityTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var f citiesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Cities) == 0 {
		return nil, fmt.Errorf("%s: no cities defined", path)
	}

	table := make(domain.CityTable, 0, len(f.Cities))
	for i, c := range f.Cities {
		c.Name = strings.ToLower(strings.TrimSpace(c.Name))
		c.File = strings.TrimSpace(c.File)
		if c.Name == "" || c.File == "" {
			return nil, fmt.Errorf("%s: entry %d needs both name and file", path, i+1)
		}
		if _, dup := table.Lookup(c.Name); dup {
			return nil, fmt.Errorf("%s: duplicate city %q", path, c.Name)
		}
		table = append(table, c)
	}
	return table, nil
}
