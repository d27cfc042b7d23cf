package state

import (
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var patchValidate = validator.New()

// Patch carries a partial member. Nil fields are left untouched.
type Patch struct {
	Id             string        `json:"id" mapstructure:"id" validate:"required"`
	Name           *string       `json:"name,omitempty" mapstructure:"name"`
	Sex            *Sex          `json:"sex,omitempty" mapstructure:"sex" validate:"omitempty,oneof=male female"`
	AgeAtDiagnosis *string       `json:"ageAtDiagnosis,omitempty" mapstructure:"ageAtDiagnosis"`
	Cancers        *string       `json:"cancers,omitempty" mapstructure:"cancers"`
	Genetics       *string       `json:"genetics,omitempty" mapstructure:"genetics"`
	IsDead         *bool         `json:"isDead,omitempty" mapstructure:"isDead"`
	Relationship   *Relationship `json:"relationship,omitempty" mapstructure:"relationship" validate:"omitempty,oneof=proband parent child related_spouse unrelated_spouse"`
	ParentId       *string       `json:"parentId,omitempty" mapstructure:"parentId"`
	SpouseId       *string       `json:"spouseId,omitempty" mapstructure:"spouseId"`
	MarriageType   *MarriageType `json:"marriageType,omitempty" mapstructure:"marriageType" validate:"omitempty,oneof=consanguineous non-consanguineous"`
	X              *float64      `json:"x,omitempty" mapstructure:"x"`
	Y              *float64      `json:"y,omitempty" mapstructure:"y"`
}

// DecodePatch accepts loosely typed form values, so an age given as a number becomes text.
func DecodePatch(src map[string]any) (patch *Patch, err error) {
	patch = &Patch{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           patch,
		WeaklyTypedInput: true,
	})

	if err != nil {
		return
	}

	err = decoder.Decode(src)

	if err != nil {
		return
	}

	err = patch.Validate()

	return
}

func (patch *Patch) Validate() error {
	return patchValidate.Struct(patch)
}

func (patch *Patch) apply(m *Member) {
	if patch.Name != nil {
		m.Name = *patch.Name
	}

	if patch.Sex != nil {
		m.Sex = *patch.Sex
	}

	if patch.AgeAtDiagnosis != nil {
		m.AgeAtDiagnosis = *patch.AgeAtDiagnosis
	}

	if patch.Cancers != nil {
		m.Cancers = *patch.Cancers
	}

	if patch.Genetics != nil {
		m.Genetics = *patch.Genetics
	}

	if patch.IsDead != nil {
		m.IsDead = *patch.IsDead
	}

	if patch.Relationship != nil {
		m.Relationship = *patch.Relationship
	}

	if patch.MarriageType != nil {
		m.MarriageType = *patch.MarriageType
	}
}
