// Package presence provides Field, a generic wrapper that tells "not provided"
// apart from "explicitly cleared" when decoding partial updates.
//
// A Field is in one of three states:
//
//   - Unset: the key never appeared in the payload (zero value)
//   - Null:  the key appeared with an explicit null
//   - Value: the key appeared with a non-null value
//
// Decoding through encoding/json or gopkg.in/yaml.v3 sets the state
// automatically, because unmarshallers are only invoked for keys that exist in
// the document:
//
//	type UpdateUser struct {
//	    Name  presence.Field[string] `json:"name,omitzero"`
//	    Email presence.Field[string] `json:"email,omitzero"`
//	}
//
//	var req UpdateUser
//	_ = json.Unmarshal([]byte(`{"email": null}`), &req)
//	req.Name.IsSet()  // false
//	req.Email.IsNull() // true
//
// ApplyTo applies a field onto an existing value with JSON Merge Patch
// semantics (RFC 7396): Unset keeps the current value, Null resets it and Value
// replaces it.
//
// State is assigned once, through Of, Null, Set or a decoder. There is no
// separate "touched fields" bookkeeping that a mutator could forget to update.
package presence
