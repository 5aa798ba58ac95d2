package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IntakeQuestion is one fixed-choice question of the pre-evaluation survey.
type IntakeQuestion struct {
	Key     string   `yaml:"key"`
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
}

type intakeFile struct {
	Questions []IntakeQuestion `yaml:"questions"`
}

// DefaultIntakeQuestions returns the built-in five-question survey.
func DefaultIntakeQuestions() []IntakeQuestion {
	return []IntakeQuestion{
		{
			Key:    "svar_lengde",
			Prompt: "Hvor lange mener du at nyhetssammendrag burde være?",
			Options: []string{
				"1-2 setninger",
				"Et kort avsnitt",
				"En mer detaljert oppsummering (flere avsnitt)",
				"Varierer avhengig av sakens kompleksitet",
			},
		},
		{
			Key:    "svar_presentasjon",
			Prompt: "Hvordan foretrekker du at nyhetssammendrag presenteres?",
			Options: []string{
				"Nøytralt og objektivt, uten vurderinger",
				"Kort og konsist, med kun de viktigste fakta",
				"Med en kort vurdering av saken",
				"Med forklaringer av komplekse begreper eller sammenhenger",
			},
		},
		{
			Key:    "svar_bakgrunn",
			Prompt: "Hvor viktig er det at nyhetssammendrag gir bakgrunnsinformasjon og kontekst?",
			Options: []string{
				"Svært viktig",
				"Litt viktig",
				"Ikke viktig",
			},
		},
		{
			Key:    "svar_viktigst",
			Prompt: "Hva er viktigst for deg?",
			Options: []string{
				"At nyhetssammendraget gir meg all relevant informasjon raskt",
				"At nyhetssammendraget forklarer hvorfor saken er viktig",
				"At nyhetssammendraget er enkelt å forstå",
				"At nyhetssammendraget har god språklig kvalitet",
			},
		},
		{
			Key:    "svar_irriterende",
			Prompt: "Hva ville irritert deg mest med et nyhetssammendrag?",
			Options: []string{
				"Upresis eller unøyaktig informasjon",
				"For mye tekst eller unødvendige detaljer",
				"Mangel på kontekst eller bakgrunn",
				"Et subjektivt eller vinklet språk",
			},
		},
	}
}

// LoadIntakeQuestions reads questions from a YAML file, falling back to the
// built-in set when path is empty. A file must define all five keys the
// persistence schema expects.
func LoadIntakeQuestions(path string) ([]IntakeQuestion, error) {
	if path == "" {
		return DefaultIntakeQuestions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read intake config %s: %w", path, err)
	}
	var f intakeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse intake config %s: %w", path, err)
	}

	keys := make(map[string]bool)
	for _, q := range f.Questions {
		if q.Key == "" || q.Prompt == "" || len(q.Options) < 2 {
			return nil, fmt.Errorf("intake config %s: question %q is incomplete", path, q.Key)
		}
		keys[q.Key] = true
	}
	for _, want := range []string{"svar_lengde", "svar_presentasjon", "svar_bakgrunn", "svar_viktigst", "svar_irriterende"} {
		if !keys[want] {
			return nil, fmt.Errorf("intake config %s missing question %q", path, want)
		}
	}

	return f.Questions, nil
}
