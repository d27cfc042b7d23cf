package narrative

import (
	"encoding/json"
	"fmt"
	"strings"

	. "github.com/redexp/pedigree/state"
)

type Record struct {
	Name           string `json:"name"`
	Sex            string `json:"sex"`
	AgeAtDiagnosis string `json:"ageAtDiagnosis"`
	Cancers        string `json:"cancers"`
	Genetics       string `json:"genetics"`
	IsDead         string `json:"isDead"`
	Relationship   string `json:"relationship"`
}

func or(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func Simplify(m *Member) Record {
	dead := "No"

	if m.IsDead {
		dead = "Yes"
	}

	return Record{
		Name:           or(m.Name, "Unnamed"),
		Sex:            or(string(m.Sex), "Unknown"),
		AgeAtDiagnosis: or(m.AgeAtDiagnosis, "Unknown"),
		Cancers:        or(m.Cancers, "None"),
		Genetics:       or(m.Genetics, "Unknown"),
		IsDead:         dead,
		Relationship:   or(string(m.Relationship), "Unknown"),
	}
}

func AnalysisPrompt(store *Store) (string, error) {
	list := make([]Record, store.Len())

	for i, m := range store.Members {
		list[i] = Simplify(m)
	}

	data, err := json.MarshalIndent(list, "", "  ")

	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString("You are an oncologist reviewing a family pedigree to assess hereditary cancer risk.\n")
	b.WriteString("The family members are listed below as JSON.\n\n")
	b.Write(data)
	b.WriteString("\n\nWrite an analysis that covers:\n")
	b.WriteString("1. Hereditary cancer syndromes this family history may point to\n")
	b.WriteString("2. Which genetic tests to consider\n")
	b.WriteString("3. Surveillance to consider given this history\n")

	return b.String(), nil
}

func memberLine(store *Store, m *Member) string {
	age := "age at diagnosis unknown"

	if m.AgeAtDiagnosis != "" {
		age = "diagnosed at age " + m.AgeAtDiagnosis
	}

	status := "living"

	if m.IsDead {
		status = "deceased"
	}

	return fmt.Sprintf(
		"%s: %s, %s sex, %s, cancer diagnosis: %s, genetics: %s, %s",
		Describe(store, m),
		or(m.Name, "Unknown"),
		or(string(m.Sex), "Unknown"),
		age,
		or(m.Cancers, "None"),
		or(m.Genetics, "Unknown"),
		status,
	)
}

func NotePrompt(store *Store) string {
	proband := store.Proband()

	if proband == nil {
		proband = &Member{}
	}

	var b strings.Builder

	b.WriteString("You are an oncologist writing the family history section of a cancer genetic counseling note.\n")
	b.WriteString("Every age below is the age at diagnosis, never the current age.\n\n")
	b.WriteString("# MEDICAL ONCOLOGY NOTE\n\n")
	b.WriteString("## PATIENT\n")
	fmt.Fprintf(&b, "Name: %s\n", or(proband.Name, "Unknown"))
	fmt.Fprintf(&b, "Sex: %s\n", or(string(proband.Sex), "Unknown"))
	fmt.Fprintf(&b, "Age at diagnosis: %s\n", or(proband.AgeAtDiagnosis, "Unknown"))
	fmt.Fprintf(&b, "Cancer diagnosis: %s\n\n", or(proband.Cancers, "None"))
	b.WriteString("## FAMILY HISTORY\n")

	for _, m := range store.Members {
		b.WriteString(memberLine(store, m))
		b.WriteString("\n")
	}

	b.WriteString("\nRewrite the family history as one paragraph. For each relative give the relation to the patient, ")
	b.WriteString("sex, cancer with age at diagnosis, known genetic status and whether they are living.\n")
	b.WriteString("Example: \"The patient's father, John, was diagnosed with colon cancer at age 45, no known genetic mutations, deceased.\"\n")
	b.WriteString("Use only the facts listed above. Do not add analysis or recommendations.\n")

	return b.String()
}
