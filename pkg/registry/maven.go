package registry

import (
	"context"
	"fmt"
	"net/url"

	"github.com/matzehuels/itdepends/pkg/errors"
)

// DefaultBaseURL is Maven Central's Solr search endpoint.
const DefaultBaseURL = "https://search.maven.org/solrsearch/select"

// MavenCentral queries the Maven Central search API.
type MavenCentral struct {
	*Client
	baseURL string
}

// NewMavenCentral creates a search client on top of c. An empty baseURL
// selects [DefaultBaseURL].
func NewMavenCentral(c *Client, baseURL string) *MavenCentral {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &MavenCentral{Client: c, baseURL: baseURL}
}

// BaseURL returns the search endpoint in use.
func (m *MavenCentral) BaseURL() string { return m.baseURL }

// LatestVersion returns the latest published version of groupID:artifactID.
//
// An empty string with a nil error means the registry knows no such
// artifact. When the matching document has no latestVersion, its v field
// is used instead.
func (m *MavenCentral) LatestVersion(ctx context.Context, groupID, artifactID string) (string, error) {
	var resp searchResponse
	if err := m.Get(ctx, searchURL(m.baseURL, groupID, artifactID), &resp); err != nil {
		return "", errors.Prefix(err, "lookup %s:%s", groupID, artifactID)
	}
	if resp.Response == nil {
		return "", errors.New(errors.ErrCodeResponseFormat, "lookup %s:%s: response envelope missing", groupID, artifactID)
	}
	if len(resp.Response.Docs) == 0 {
		return "", nil
	}

	doc := resp.Response.Docs[0]
	if doc.LatestVersion != "" {
		return doc.LatestVersion, nil
	}
	return doc.Version, nil
}

// searchURL builds the query for exactly one row of JSON results.
func searchURL(base, groupID, artifactID string) string {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("g:%s AND a:%s", groupID, artifactID))
	q.Set("rows", "1")
	q.Set("wt", "json")
	return base + "?" + q.Encode()
}

type searchResponse struct {
	Response *struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	ID            string `json:"id"`
	GroupID       string `json:"g"`
	ArtifactID    string `json:"a"`
	Version       string `json:"v"`
	LatestVersion string `json:"latestVersion"`
}
