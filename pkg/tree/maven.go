package tree

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/matzehuels/itdepends/pkg/artifact"
	"github.com/matzehuels/itdepends/pkg/errors"
)

// MavenJSON parses the JSON tree written by maven-dependency-plugin's
// dependency:tree goal with -DoutputType=json.
type MavenJSON struct{}

// Name returns "maven-json".
func (MavenJSON) Name() string { return "maven-json" }

// Parse decodes a single JSON object. Fields other than the known node
// fields are ignored so exports from newer plugin versions still load.
// Trailing data after the object is rejected.
func (MavenJSON) Parse(data []byte) (*artifact.Artifact, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var root *node
	if err := dec.Decode(&root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode json")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrCodeParse, "decode json: unexpected data after tree")
	}
	return root.build("root")
}

// UnmarshalJSON accepts "true"/"false" strings and JSON booleans.
func (o *optionalFlag) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*o = false
		return nil
	}
	var native bool
	if err := json.Unmarshal(b, &native); err == nil {
		*o = optionalFlag(native)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := parseOptional(s)
	if err != nil {
		return err
	}
	*o = v
	return nil
}
