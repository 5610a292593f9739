package decode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type nodeKind uint8

const (
	nullNode nodeKind = iota
	objectNode
	arrayNode
	scalarNode
)

func (k nodeKind) String() string {
	switch k {
	case nullNode:
		return "null"
	case objectNode:
		return "object"
	case arrayNode:
		return "array"
	default:
		return "scalar"
	}
}

// node is one value of a parsed document, independent of its format.
type node interface {
	kind() nodeKind
	// entries returns object members in document order.
	entries() ([]string, map[string]node)
	items() []node
	// decodeLeaf decodes the node into target with the format's own decoder.
	decodeLeaf(target any) error
}

type jsonNode json.RawMessage

func parseJSON(data []byte) (node, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return jsonNode(bytes.TrimSpace(raw)), nil
}

func (n jsonNode) kind() nodeKind {
	if len(n) == 0 {
		return nullNode
	}
	switch n[0] {
	case 'n':
		return nullNode
	case '{':
		return objectNode
	case '[':
		return arrayNode
	default:
		return scalarNode
	}
}

func (n jsonNode) entries() ([]string, map[string]node) {
	dec := json.NewDecoder(bytes.NewReader(n))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil, nil
	}
	var keys []string
	members := make(map[string]node)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys, members
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return keys, members
		}
		if _, dup := members[key]; !dup {
			keys = append(keys, key)
		}
		members[key] = jsonNode(raw)
	}
	return keys, members
}

func (n jsonNode) items() []node {
	var raw []json.RawMessage
	if err := json.Unmarshal(n, &raw); err != nil {
		return nil
	}
	out := make([]node, len(raw))
	for i, r := range raw {
		out[i] = jsonNode(r)
	}
	return out
}

func (n jsonNode) decodeLeaf(target any) error {
	return json.Unmarshal(n, target)
}

type yamlNode struct {
	n *yaml.Node
}

func parseYAML(data []byte) (node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yamlNode{n: &doc}, nil
}

// resolved unwraps documents and aliases.
func (y yamlNode) resolved() *yaml.Node {
	n := y.n
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func (y yamlNode) kind() nodeKind {
	n := y.resolved()
	switch {
	case n == nil || n.Kind == 0 || n.Kind == yaml.DocumentNode:
		return nullNode
	case n.Kind == yaml.MappingNode:
		return objectNode
	case n.Kind == yaml.SequenceNode:
		return arrayNode
	case n.ShortTag() == "!!null":
		return nullNode
	default:
		return scalarNode
	}
}

func (y yamlNode) entries() ([]string, map[string]node) {
	n := y.resolved()
	var keys []string
	members := make(map[string]node)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if _, dup := members[key]; !dup {
			keys = append(keys, key)
		}
		members[key] = yamlNode{n: n.Content[i+1]}
	}
	return keys, members
}

func (y yamlNode) items() []node {
	n := y.resolved()
	out := make([]node, len(n.Content))
	for i, c := range n.Content {
		out[i] = yamlNode{n: c}
	}
	return out
}

func (y yamlNode) decodeLeaf(target any) error {
	n := y.resolved()
	if n == nil {
		return fmt.Errorf("empty yaml node")
	}
	return n.Decode(target)
}
