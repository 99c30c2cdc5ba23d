package textfmt

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Descriptor is the subset of an API description used to build file
// headers. Info keeps its document order so banners are stable.
type Descriptor struct {
	Info     yaml.Node `yaml:"info"`
	Host     string    `yaml:"host"`
	BasePath string    `yaml:"basePath"`
}

// Path combines host and base path, e.g. "api.example.com" + "/v1".
func (d *Descriptor) Path() string {
	return d.Host + d.BasePath
}

// ParseDescriptor decodes a descriptor from YAML or JSON.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing descriptor: %w", err)
	}
	if d.Info.Kind != 0 && d.Info.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing descriptor: info must be a mapping")
	}
	return &d, nil
}

// LoadDescriptor reads and decodes a descriptor file.
func LoadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}
	return ParseDescriptor(data)
}

var wordChar = regexp.MustCompile(`\w`)

// ProcessHeader renders the descriptor's info values and combined path
// as a comment banner. Keys and structural punctuation are dropped; each
// value sits on its own line, indented one unit per nesting level. Lines
// without any word character are discarded. With omitVersion the
// info.version entry is left out.
//
// Example (unit 2):
//
//	info: {title: Pets, version: "1.0"}, host: h, basePath: /p
//
//	/**
//	 *     Pets
//	 *   h/p
//	 */
func (f *Formatter) ProcessHeader(d *Descriptor, omitVersion bool) string {
	h := headerWriter{f: f, omitVersion: omitVersion}

	if d.Info.Kind == yaml.MappingNode {
		h.mapping(&d.Info, 2, true)
	}
	h.value(d.Path(), 1)

	return MakeCommentLines(h.lines)
}

type headerWriter struct {
	f           *Formatter
	omitVersion bool
	lines       []string
}

func (h *headerWriter) mapping(n *yaml.Node, depth int, infoRoot bool) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if infoRoot && h.omitVersion && key.Value == "version" {
			continue
		}
		h.node(val, depth)
	}
}

func (h *headerWriter) node(n *yaml.Node, depth int) {
	switch n.Kind {
	case yaml.ScalarNode:
		h.value(n.Value, depth)
	case yaml.MappingNode:
		h.mapping(n, depth+1, false)
	case yaml.SequenceNode:
		for _, item := range n.Content {
			h.node(item, depth+1)
		}
	case yaml.AliasNode:
		if n.Alias != nil {
			h.node(n.Alias, depth)
		}
	case yaml.DocumentNode:
		for _, c := range n.Content {
			h.node(c, depth)
		}
	}
}

func (h *headerWriter) value(v string, depth int) {
	prefix := h.f.prefix(depth)
	for _, line := range strings.Split(v, "\n") {
		if !wordChar.MatchString(line) {
			continue
		}
		h.lines = append(h.lines, prefix+line)
	}
}
