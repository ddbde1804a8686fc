package contact

import (
	"fmt"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/goccy/go-yaml"
	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// seedFile is the layout of a contacts seed file.
type seedFile struct {
	Contacts []Contact `yaml:"contacts"`
}

// LoadFile reads contacts from a YAML file of the form:
//
//	contacts:
//	- name: Ann
//	  email: ann@example.com
//	  notes: |
//	    Met at *the conference*.
func LoadFile(path string) ([]Contact, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed seedFile
	if err := yaml.Unmarshal(b, &seed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return seed.Contacts, nil
}

// Generate returns n contacts with made-up names.
func Generate(n int) []Contact {
	title := cases.Title(language.English)
	contacts := make([]Contact, n)
	for i := range contacts {
		name := petname.Generate(2, " ")
		contacts[i] = Contact{
			Name:  title.String(name),
			Email: strcase.ToSnake(name) + "@example.com",
			Notes: fmt.Sprintf("Generated contact **#%d**.", i+1),
		}
	}
	return contacts
}
