package interact

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/redexp/pedigree/codec"
	"github.com/redexp/pedigree/i18n"
	"github.com/redexp/pedigree/state"
)

var errorKeys = []struct {
	err error
	key string
}{
	{state.ErrChildNeedsSpouse, "child_needs_spouse"},
	{state.ErrSpouseExists, "spouse_exists"},
	{state.ErrParentExists, "parent_exists"},
	{state.ErrDeleteProband, "delete_proband"},
	{state.ErrProbandRelationship, "proband_relationship"},
	{state.ErrSpouseNeedsLink, "spouse_needs_link"},
	{state.ErrUnknownAnnotation, "unknown_annotation"},
	{state.ErrUnknownKind, "unknown_kind"},
	{codec.ErrNoHeader, "no_header"},
	{codec.ErrNoRows, "no_rows"},
}

// ErrorMessage turns a rejected operation into text for the user.
func ErrorMessage(err error) string {
	if errors.Is(err, state.ErrUnknownMember) {
		id := strings.TrimPrefix(err.Error(), state.ErrUnknownMember.Error())

		return i18n.L("unknown_member", strings.TrimPrefix(id, ": "))
	}

	for _, item := range errorKeys {
		if errors.Is(err, item.err) {
			return i18n.L(item.key)
		}
	}

	var invalid validator.ValidationErrors

	if errors.As(err, &invalid) {
		return i18n.L("invalid_member", err.Error())
	}

	return err.Error()
}
