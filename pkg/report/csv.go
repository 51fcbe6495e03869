// Package report renders flattened artifacts as a CSV table.
//
// Each artifact becomes one record without a header row:
//
//	group,artifact,version,latestVersion
//
// latestVersion is empty when the registry was not consulted or knows no
// such artifact. Records keep the order of the input; sorting is the
// flattener's job.
package report

import (
	"encoding/csv"
	"io"

	"github.com/matzehuels/itdepends/pkg/artifact"
	"github.com/matzehuels/itdepends/pkg/errors"
)

// WriteCSV writes one record per artifact to w.
// Any write failure returns an error with [errors.ErrCodeOutput].
func WriteCSV(w io.Writer, arts []artifact.FlatArtifact) error {
	cw := csv.NewWriter(w)
	for _, a := range arts {
		if err := cw.Write(Record(a)); err != nil {
			return errors.Wrap(errors.ErrCodeOutput, err, "write %s", a.Key())
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "flush csv")
	}
	return nil
}

// Record returns the CSV fields for a.
func Record(a artifact.FlatArtifact) []string {
	return []string{a.GroupID, a.ArtifactID, a.Version, a.LatestVersion}
}
