package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// Document is a read-only set of string values loaded from one YAML file.
type Document struct {
	path   string
	values map[string]string
}

// Empty returns a document with no entries, used when no override applies.
func Empty() Document {
	return Document{values: map[string]string{}}
}

// LoadFile reads and parses the YAML document at path.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read file: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes data as a flat YAML mapping. Scalar values keep their source
// text, so "0.50" stays "0.50" instead of being normalized as a float.
// Null values are treated as absent.
func Parse(path string, data []byte) (Document, error) {
	doc := Document{path: path, values: map[string]string{}}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		return Document{}, fmt.Errorf("parse YAML %s: %w", path, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("%s holds more than one YAML document: %w", path, ErrMalformedDocument)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return doc, nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return doc, nil
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == nullTag {
		return doc, nil
	}
	if node.Kind != yaml.MappingNode {
		return Document{}, fmt.Errorf("%s: %w", path, ErrMalformedDocument)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if key.Kind != yaml.ScalarNode {
			return Document{}, fmt.Errorf("%s line %d: %w", path, key.Line, ErrMalformedDocument)
		}
		if value.Kind != yaml.ScalarNode {
			return Document{}, fmt.Errorf("%s key %q: %w", path, key.Value, ErrMalformedDocument)
		}
		if value.ShortTag() == nullTag {
			continue
		}
		doc.values[key.Value] = value.Value
	}

	return doc, nil
}

// Lookup returns the value stored under key.
func (d Document) Lookup(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the document keys in sorted order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of entries.
func (d Document) Len() int {
	return len(d.values)
}

// Path returns the file the document was loaded from, or "" for Empty.
func (d Document) Path() string {
	return d.path
}
