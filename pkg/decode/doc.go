// Package decode turns JSON or YAML documents into models built from
// presence.Field values and reports conversion failures as validator issues.
//
// The standard decoders stop at the first type error. This package walks the
// whole document instead, so a payload like
//
//	{"age": "abc", "zoo": [{"colorEnum": "red"}, {"colorEnum": "blue"}]}
//
// yields one issue at "age" and one at "zoo.1.colorEnum" while every other
// field is still populated.
//
// Presence is preserved. A key missing from the document leaves its field
// Unset, an explicit null makes it Null, and a value that cannot be converted
// leaves it Unset next to an issue at its path.
//
// Decoding and validation share one issue list:
//
//	model, issues, err := decode.JSON[Pet](body)
//	if err != nil {
//		return err // malformed document
//	}
//	res := validator.FromIssues[Pet](issues).And(petValidator).Validate(model)
//
// Struct fields are matched by their yaml or json tag, falling back to the
// Go field name. Unknown keys are reported unless AllowUnknown is given.
package decode
