package tree

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/itdepends/pkg/artifact"
	"github.com/matzehuels/itdepends/pkg/errors"
)

// YAML parses a tree with the same fields as [MavenJSON] written as YAML:
//
//	groupId: com.acme
//	artifactId: app
//	version: "1.0"
//	children:
//	  - groupId: org.slf4j
//	    artifactId: slf4j-api
//	    version: 2.0.9
//	    scope: compile
type YAML struct{}

// Name returns "yaml".
func (YAML) Name() string { return "yaml" }

// Parse decodes a single YAML document. Unknown fields are ignored, as in
// [MavenJSON]; additional documents are rejected.
func (YAML) Parse(data []byte) (*artifact.Artifact, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root *node
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeParse, "decode yaml: empty document")
		}
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode yaml")
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.New(errors.ErrCodeParse, "decode yaml: unexpected document after tree")
	}
	return root.build("root")
}

// UnmarshalYAML accepts "true"/"false" strings and YAML booleans.
func (o *optionalFlag) UnmarshalYAML(n *yaml.Node) error {
	if n.Tag == "!!bool" {
		var native bool
		if err := n.Decode(&native); err != nil {
			return err
		}
		*o = optionalFlag(native)
		return nil
	}
	v, err := parseOptional(n.Value)
	if err != nil {
		return err
	}
	*o = v
	return nil
}
