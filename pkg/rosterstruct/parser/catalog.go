package parser

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// AnchorRule resolves a known team: when the token Offset positions
// after the team header equals Fragment, the team is Team.
type AnchorRule struct {
	Offset   int    `yaml:"offset"`
	Fragment string `yaml:"fragment"`
	Team     string `yaml:"team"`
}

// Catalog is an ordered list of anchor rules; the first matching rule wins.
type Catalog struct {
	Rules []AnchorRule
}

// DefaultCatalog returns the catalog of known federation teams.
func DefaultCatalog() Catalog {
	return Catalog{Rules: []AnchorRule{
		{Offset: 2, Fragment: "Прикамья", Team: "Молния Прикамья"},
		{Offset: 1, Fragment: "Ак", Team: "Ак Барс"},
		{Offset: 1, Fragment: "Снежные", Team: "Снежные Барсы"},
		{Offset: 1, Fragment: "Хоккей", Team: "Хоккей Для Детей"},
		{Offset: 1, Fragment: "Дети", Team: "Дети-Икс"},
		{Offset: 1, Fragment: "СКА", Team: "СКА-Стрела"},
		{Offset: 2, Fragment: "Новосибирской", Team: "Сборная Новосибирской области"},
		{Offset: 3, Fragment: "Атал", Team: "Атал"},
		{Offset: 2, Fragment: "мечты", Team: "Крылья Мечты"},
		{Offset: 1, Fragment: "Огни", Team: "Огни Магнитки"},
		{Offset: 3, Fragment: "Краснодар", Team: "Энергия Жизни Краснодар"},
		{Offset: 4, Fragment: "Сочи", Team: "Энергия Жизни Сочи"},
		{Offset: 1, Fragment: "Динамо", Team: "Динамо-Москва"},
		{Offset: 2, Fragment: "Советов", Team: "Крылья Советов"},
		{Offset: 2, Fragment: "Ракета", Team: "Красная Ракета"},
		{Offset: 2, Fragment: "молния", Team: "Красная Молния"},
		{Offset: 1, Fragment: "Сахалинские", Team: "Сахалинские Львята"},
		{Offset: 1, Fragment: "Мамонтята", Team: "Мамонтята Югры"},
		{Offset: 1, Fragment: "Уральские", Team: "Уральские Волки"},
		{Offset: 1, Fragment: "Всего", Team: models.TeamUnnamed},
	}}
}

// Extend returns a copy of the catalog with rules appended after the
// existing ones.
func (c Catalog) Extend(rules ...AnchorRule) Catalog {
	merged := make([]AnchorRule, 0, len(c.Rules)+len(rules))
	merged = append(merged, c.Rules...)
	merged = append(merged, rules...)
	return Catalog{Rules: merged}
}

type catalogFile struct {
	Anchors []AnchorRule `yaml:"anchors"`
}

// LoadAnchorRules reads anchor rules from a YAML document of the form
//
//	anchors:
//	  - offset: 1
//	    fragment: Ак
//	    team: Ак Барс
func LoadAnchorRules(r io.Reader) ([]AnchorRule, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode anchor rules: %w", err)
	}
	for i, rule := range file.Anchors {
		if rule.Offset < 1 {
			return nil, fmt.Errorf("anchor rule %d: offset must be positive, got %d", i, rule.Offset)
		}
		if rule.Fragment == "" || rule.Team == "" {
			return nil, fmt.Errorf("anchor rule %d: fragment and team are required", i)
		}
	}
	return file.Anchors, nil
}
