// Package tree decodes dependency-tree documents into [artifact.Artifact]
// trees.
//
// The input format is pluggable through [Parser]. [MavenJSON] reads the
// output of
//
//	mvn dependency:tree -DoutputType=json -DoutputFile=deps.json
//
// and [YAML] reads the same node shape written as YAML. Both formats apply
// the same rules: unknown fields are ignored, every node needs a groupId,
// artifactId and version. Parsers either return a fully populated tree or
// an error with code [errors.ErrCodeParse]; they never return a partial
// tree.
package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/itdepends/pkg/artifact"
	"github.com/matzehuels/itdepends/pkg/errors"
)

// Parser converts a raw tree document into an artifact tree.
type Parser interface {
	// Name identifies the format in logs (e.g., "maven-json").
	Name() string
	// Parse decodes data. The returned root is never nil when err is nil.
	Parse(data []byte) (*artifact.Artifact, error)
}

// ForPath picks a parser from the file extension: [YAML] for .yaml/.yml,
// [MavenJSON] for everything else.
func ForPath(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML{}
	default:
		return MavenJSON{}
	}
}

// ReadFile reads the document at path and parses it with p.
// If p is nil, [ForPath] selects the parser.
//
// Read failures carry [errors.ErrCodeInput]; decode failures carry
// [errors.ErrCodeParse].
func ReadFile(path string, p Parser) (*artifact.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInput, err, "open %s", path)
	}
	if p == nil {
		p = ForPath(path)
	}
	root, err := p.Parse(data)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode %s", path)
	}
	return root, nil
}

// node is the decoded shape shared by all formats.
type node struct {
	GroupID    string       `json:"groupId" yaml:"groupId"`
	ArtifactID string       `json:"artifactId" yaml:"artifactId"`
	Version    string       `json:"version" yaml:"version"`
	Type       string       `json:"type" yaml:"type"`
	Scope      string       `json:"scope" yaml:"scope"`
	Classifier string       `json:"classifier" yaml:"classifier"`
	Optional   optionalFlag `json:"optional" yaml:"optional"`
	Children   []*node      `json:"children" yaml:"children"`
}

// build validates n and its subtree and converts it to an artifact tree.
// path locates n in the document for error messages.
func (n *node) build(path string) (*artifact.Artifact, error) {
	if n == nil {
		return nil, errors.New(errors.ErrCodeParse, "%s: null node", path)
	}
	for _, f := range []struct{ name, value string }{
		{"groupId", n.GroupID},
		{"artifactId", n.ArtifactID},
		{"version", n.Version},
	} {
		if err := errors.ValidateCoordinate(f.name, f.value); err != nil {
			return nil, errors.New(errors.ErrCodeParse, "%s: %s", path, errors.UserMessage(err))
		}
	}

	a := &artifact.Artifact{
		GroupID:    n.GroupID,
		ArtifactID: n.ArtifactID,
		Version:    n.Version,
		Type:       n.Type,
		Scope:      n.Scope,
		Classifier: n.Classifier,
		Optional:   bool(n.Optional),
	}
	if len(n.Children) > 0 {
		a.Children = make([]*artifact.Artifact, 0, len(n.Children))
	}
	for i, c := range n.Children {
		child, err := c.build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		a.Children = append(a.Children, child)
	}
	return a, nil
}

// optionalFlag decodes Maven's "true"/"false" string tokens. Native booleans
// are accepted too; an absent field means false.
type optionalFlag bool

func parseOptional(s string) (optionalFlag, error) {
	switch s {
	case "true":
		return true, nil
	case "false", "":
		return false, nil
	default:
		return false, fmt.Errorf("optional: invalid value %q (expected \"true\" or \"false\")", s)
	}
}
