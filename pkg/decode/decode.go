package decode

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/patchkit/pkg/presence"
	"github.com/dmitrymomot/patchkit/pkg/validator"
)

// Format selects the document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Issue codes reported by the decoder.
const (
	CodeInvalidType     = "decode.invalid_type"
	CodeUnknownProperty = "decode.unknown_property"
	CodeTooManyItems    = "decode.too_many_items"
)

// Option configures decoding.
type Option func(*options)

type options struct {
	allowUnknown bool
}

// AllowUnknown ignores object keys that have no matching struct field.
// By default they are reported as issues.
func AllowUnknown() Option {
	return func(o *options) { o.allowUnknown = true }
}

// JSON decodes data into a new M. Conversion failures are returned as issues,
// not errors; err is only set for malformed documents.
func JSON[M any](data []byte, opts ...Option) (M, validator.IssueList, error) {
	var model M
	issues, err := Into(FormatJSON, data, &model, opts...)
	return model, issues, err
}

// YAML decodes data into a new M. See JSON.
func YAML[M any](data []byte, opts ...Option) (M, validator.IssueList, error) {
	var model M
	issues, err := Into(FormatYAML, data, &model, opts...)
	return model, issues, err
}

// Into decodes data into target, which must be a non-nil pointer.
//
// Every value that cannot be converted is reported at its dotted path, e.g.
// "zoo.1.colorEnum", and decoding continues with the rest of the document.
// A presence.Field whose value fails to convert stays Unset. An explicit null
// sets it to Null.
func Into(format Format, data []byte, target any, opts ...Option) (validator.IssueList, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, target)
	}

	var (
		root node
		err  error
	)
	switch format {
	case FormatJSON:
		root, err = parseJSON(data)
	case FormatYAML:
		root, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrMalformedDocument, err)
	}

	w := &walker{tag: string(format)}
	for _, opt := range opts {
		opt(&w.opts)
	}

	var issues validator.IssueList
	w.assign(root, rv.Elem(), validator.NewCollector(&issues))
	return issues, nil
}

var (
	assignableType      = reflect.TypeFor[presence.Assignable]()
	jsonUnmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	yamlUnmarshalerType = reflect.TypeFor[yaml.Unmarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

type walker struct {
	tag  string
	opts options
}

// assign decodes n into rv and reports whether rv itself could be set.
// Containers report true once their shape matches, even when some of their
// members failed; those failures are already in c.
func (w *walker) assign(n node, rv reflect.Value, c *validator.Collector) bool {
	if rv.CanAddr() && rv.Addr().Type().Implements(assignableType) {
		return w.assignPresence(n, rv.Addr().Interface().(presence.Assignable), c)
	}

	if n.kind() == nullNode {
		rv.Set(reflect.Zero(rv.Type()))
		return true
	}

	if rv.Kind() == reflect.Pointer {
		elem := reflect.New(rv.Type().Elem())
		if !w.assign(n, elem.Elem(), c) {
			return false
		}
		rv.Set(elem)
		return true
	}

	if isLeaf(rv.Type()) {
		return w.leaf(n, rv, c)
	}

	switch rv.Kind() {
	case reflect.Struct:
		return w.object(n, rv, c)
	case reflect.Slice:
		return w.slice(n, rv, c)
	case reflect.Array:
		return w.array(n, rv, c)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return w.leaf(n, rv, c)
		}
		return w.mapping(n, rv, c)
	default:
		return w.leaf(n, rv, c)
	}
}

// assignPresence leaves the field Unset when its value cannot be converted.
func (w *walker) assignPresence(n node, field presence.Assignable, c *validator.Collector) bool {
	if n.kind() == nullNode {
		field.SetNull()
		return true
	}
	target := field.NewTarget()
	if !w.assign(n, reflect.ValueOf(target).Elem(), c) {
		return false
	}
	field.AssignFrom(target)
	return true
}

func (w *walker) object(n node, rv reflect.Value, c *validator.Collector) bool {
	if n.kind() != objectNode {
		return w.mismatch(rv.Type(), c)
	}

	keys, members := n.entries()
	seen := make(map[string]bool, len(keys))
	for _, f := range w.fields(rv.Type()) {
		member, ok := members[f.name]
		if !ok {
			continue
		}
		seen[f.name] = true
		w.assign(member, fieldByIndex(rv, f.index), c.WithPrefix(f.name))
	}

	if !w.opts.allowUnknown {
		for _, key := range keys {
			if !seen[key] {
				c.WithPrefix(key).Add("", CodeUnknownProperty, "unknown property")
			}
		}
	}
	return true
}

type structField struct {
	name  string
	index []int
}

// fields lists the decodable fields of t. Fields of embedded structs without
// a name tag are promoted as with encoding/json: a shallower field wins over a
// deeper one with the same name.
func (w *walker) fields(t reflect.Type) []structField {
	var out []structField
	taken := make(map[string]bool)
	visited := make(map[reflect.Type]bool)

	types, prefixes := []reflect.Type{t}, [][]int{nil}
	for len(types) > 0 {
		var (
			found        []structField
			nextTypes    []reflect.Type
			nextPrefixes [][]int
		)
		for k, typ := range types {
			if visited[typ] {
				continue
			}
			visited[typ] = true

			for i := range typ.NumField() {
				sf := typ.Field(i)
				index := append(append([]int(nil), prefixes[k]...), i)
				if embedded, ok := w.promoted(sf); ok {
					nextTypes = append(nextTypes, embedded)
					nextPrefixes = append(nextPrefixes, index)
					continue
				}
				if !sf.IsExported() {
					continue
				}
				name, skip := w.fieldName(sf)
				if skip {
					continue
				}
				found = append(found, structField{name: name, index: index})
			}
		}
		for _, f := range found {
			if !taken[f.name] {
				taken[f.name] = true
				out = append(out, f)
			}
		}
		types, prefixes = nextTypes, nextPrefixes
	}
	return out
}

// promoted reports whether sf is an embedded struct whose fields decode at the
// parent level, and returns the struct type.
func (w *walker) promoted(sf reflect.StructField) (reflect.Type, bool) {
	if !sf.Anonymous {
		return nil, false
	}
	if name, skip := w.fieldName(sf); skip || name != sf.Name {
		return nil, false
	}
	t := sf.Type
	if t.Kind() == reflect.Pointer {
		// a nil pointer to an unexported type cannot be allocated
		if !sf.IsExported() {
			return nil, false
		}
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || isLeaf(t) || reflect.PointerTo(t).Implements(assignableType) {
		return nil, false
	}
	return t, true
}

// fieldByIndex walks index from v, allocating nil embedded pointers.
func fieldByIndex(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}

// fieldName reads the format's own tag first and falls back to the json tag,
// so json-tagged models decode from YAML too.
func (w *walker) fieldName(sf reflect.StructField) (string, bool) {
	tag, ok := sf.Tag.Lookup(w.tag)
	if !ok {
		tag = sf.Tag.Get("json")
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}
	return name, false
}

func (w *walker) slice(n node, rv reflect.Value, c *validator.Collector) bool {
	if n.kind() != arrayNode {
		return w.mismatch(rv.Type(), c)
	}
	items := n.items()
	out := reflect.MakeSlice(rv.Type(), len(items), len(items))
	for i, item := range items {
		w.assign(item, out.Index(i), c.WithPrefix(strconv.Itoa(i)))
	}
	rv.Set(out)
	return true
}

func (w *walker) array(n node, rv reflect.Value, c *validator.Collector) bool {
	if n.kind() != arrayNode {
		return w.mismatch(rv.Type(), c)
	}
	items := n.items()
	if len(items) > rv.Len() {
		c.Add("", CodeTooManyItems, fmt.Sprintf("must contain at most %d items", rv.Len()))
		items = items[:rv.Len()]
	}
	for i, item := range items {
		w.assign(item, rv.Index(i), c.WithPrefix(strconv.Itoa(i)))
	}
	return true
}

func (w *walker) mapping(n node, rv reflect.Value, c *validator.Collector) bool {
	if n.kind() != objectNode {
		return w.mismatch(rv.Type(), c)
	}
	keys, members := n.entries()
	t := rv.Type()
	out := reflect.MakeMapWithSize(t, len(keys))
	for _, key := range keys {
		elem := reflect.New(t.Elem()).Elem()
		w.assign(members[key], elem, c.WithPrefix(key))
		out.SetMapIndex(reflect.ValueOf(key).Convert(t.Key()), elem)
	}
	rv.Set(out)
	return true
}

// leaf decodes into a fresh value so a failed conversion never leaves a
// partially written target behind.
func (w *walker) leaf(n node, rv reflect.Value, c *validator.Collector) bool {
	target := reflect.New(rv.Type())
	if err := n.decodeLeaf(target.Interface()); err != nil {
		return w.mismatch(rv.Type(), c)
	}
	rv.Set(target.Elem())
	return true
}

func (w *walker) mismatch(t reflect.Type, c *validator.Collector) bool {
	c.Add("", CodeInvalidType, fmt.Sprintf("not a valid %s value", typeLabel(t)))
	return false
}

func isLeaf(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return pt.Implements(jsonUnmarshalerType) ||
		pt.Implements(yamlUnmarshalerType) ||
		pt.Implements(textUnmarshalerType)
}

func typeLabel(t reflect.Type) string {
	if isLeaf(t) && t.Name() != "" {
		return t.Name()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Integer"
	case reflect.Float32, reflect.Float64:
		return "Number"
	case reflect.Bool:
		return "Boolean"
	case reflect.String:
		return "String"
	case reflect.Slice, reflect.Array:
		return "Array"
	case reflect.Struct, reflect.Map:
		return "Object"
	default:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	}
}
