package memory

import (
	_ "embed"
	"fmt"
	"time"

	"gestao_igreja/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the fixed data every store starts from.
type Seed struct {
	Members       []entities.Member       `yaml:"members"`
	Transactions  []entities.Transaction  `yaml:"transactions"`
	Events        []entities.Event        `yaml:"-"`
	Blocks        []entities.BlockedDate  `yaml:"blocked_dates"`
	Rosters       []entities.Roster       `yaml:"rosters"`
	Groups        []entities.Group        `yaml:"groups"`
	Classes       []entities.EBDClass     `yaml:"ebd_classes"`
	Lessons       []entities.Lesson       `yaml:"ebd_lessons"`
	Students      []entities.Student      `yaml:"ebd_students"`
	Congregations []entities.Congregation `yaml:"congregations"`
	Assets        []entities.Asset        `yaml:"assets"`
	Beneficiaries []entities.Beneficiary  `yaml:"beneficiaries"`
	Resources     []entities.Resource     `yaml:"resources"`
}

type seedEvent struct {
	entities.Event `yaml:",inline"`
	Day            int `yaml:"day"`
}

type seedFile struct {
	Seed   `yaml:",inline"`
	Events []seedEvent `yaml:"events"`
}

// LoadSeed decodes the embedded seed. Events are placed in the month of now, matching
// a calendar that always opens on the current month.
func LoadSeed(now time.Time) (Seed, error) {
	return parseSeed(seedYAML, now)
}

func parseSeed(raw []byte, now time.Time) (Seed, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}

	seed := f.Seed
	seed.Events = make([]entities.Event, 0, len(f.Events))
	for _, se := range f.Events {
		ev := se.Event
		if se.Day > 0 {
			ev.Date = entities.NewDate(now.Year(), now.Month(), se.Day)
		}
		seed.Events = append(seed.Events, ev)
	}

	for i, r := range seed.Resources {
		seed.Resources[i] = r.WithQuantity(r.Quantity)
	}
	return seed, nil
}
