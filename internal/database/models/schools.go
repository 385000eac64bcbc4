package models

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed schools.yaml
var schoolsYAML []byte

type schoolsFile struct {
	Schools []string `yaml:"schools"`
}

var (
	schoolsOnce  sync.Once
	schoolsList  []string
	schoolsIndex map[string]string
	schoolsErr   error
)

func loadSchools() {
	var f schoolsFile
	if err := yaml.Unmarshal(schoolsYAML, &f); err != nil {
		schoolsErr = fmt.Errorf("parse schools.yaml: %w", err)
		return
	}
	schoolsIndex = make(map[string]string, len(f.Schools))
	for _, s := range f.Schools {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := schoolsIndex[key]; dup {
			continue
		}
		schoolsIndex[key] = s
		schoolsList = append(schoolsList, s)
	}
}

// Schools returns the fixed list of participating schools.
func Schools() ([]string, error) {
	schoolsOnce.Do(loadSchools)
	if schoolsErr != nil {
		return nil, schoolsErr
	}
	out := make([]string, len(schoolsList))
	copy(out, schoolsList)
	return out, nil
}

// CanonicalSchool matches s case-insensitively against the school list and
// returns the listed spelling.
func CanonicalSchool(s string) (string, bool) {
	schoolsOnce.Do(loadSchools)
	if schoolsErr != nil {
		return "", false
	}
	name, ok := schoolsIndex[strings.ToLower(strings.TrimSpace(s))]
	return name, ok
}
