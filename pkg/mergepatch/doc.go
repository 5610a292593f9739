// Package mergepatch serves partial updates over HTTP.
//
// A request body is decoded into a model of presence.Field values, so keys the
// client left out stay Unset and explicit nulls become Null. The model is then
// validated, and only a valid patch reaches the ApplyFunc, which typically
// merges it into a stored record with presence.Field.ApplyTo.
//
//	h := mergepatch.NewHandler(profileValidator, applyProfile,
//		mergepatch.WithLogger(mergepatch.RequestLogger()),
//		mergepatch.WithMetrics(mergepatch.NewMetrics("profiles", nil)),
//	)
//	r := mergepatch.NewRouter()
//	mergepatch.Mount(r, "/profiles/{id}", h)
//
// Accepted media types are application/json, application/merge-patch+json
// and application/yaml.
//
// Every issue is reported at once. Conversion failures come first, followed by
// validation issues, in a 422 response:
//
//	{"error": "validation failed", "issues": [{"path": "age", "code": "decode.invalid_type", "message": "not a valid Integer value"}]}
//
// Unreadable requests get 415, 413 or 400 with a plain error message.
package mergepatch
