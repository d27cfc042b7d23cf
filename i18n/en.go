package i18n

var EN = Messages{
	"unknown_member":       "Unknown member %s",
	"child_needs_spouse":   "Add a spouse before adding a child",
	"spouse_exists":        "This member already has a spouse",
	"parent_exists":        "This member already has a parent",
	"delete_proband":       "The proband can not be deleted",
	"proband_relationship": "The proband relationship can not be changed",
	"spouse_needs_link":    "A spouse must stay linked to a partner",
	"unknown_annotation":   "Unknown annotation",
	"unknown_kind":         "Unknown relative type",
	"invalid_member":       "Invalid member data: %s",
	"no_header":            "The file has no header row",
	"no_rows":              "The file has no data rows",
	"import_failed":        "Import failed: %s",
	"imported":             "Imported %d members",
	"busy":                 "Generation is already in progress",
	"narrative_failed":     "Could not generate text: %s",
	"missing_api_key":      "The language model API key is not configured",
	"legend_title":         "Cancer Types:",
	"analysis_title":       "Pedigree analysis",
	"note_title":           "Medical note",
	"enter_text":           "Enter text:",
	"edit_text":            "Edit text:",
}
