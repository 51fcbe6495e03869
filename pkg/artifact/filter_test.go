package artifact

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilter(t *testing.T) {
	arts := []FlatArtifact{
		{GroupID: "com.acme", ArtifactID: "api", Version: "1", Scope: ScopeCompile},
		{GroupID: "com.acme.util", ArtifactID: "strings", Version: "1", Scope: ScopeCompile},
		{GroupID: "com.acmex", ArtifactID: "other", Version: "1", Scope: ScopeCompile},
		{GroupID: "junit", ArtifactID: "junit", Version: "4.13", Scope: ScopeTest},
		{GroupID: "javax.servlet", ArtifactID: "servlet-api", Version: "3.1", Scope: ScopeProvided},
		{GroupID: "org.slf4j", ArtifactID: "slf4j-api", Version: "2.0", Scope: ScopeRuntime},
	}
	before := append([]FlatArtifact(nil), arts...)

	got := keys(Filter(arts, "com.acme"))
	want := []string{"com.acmex:other:1", "org.slf4j:slf4j-api:2.0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, arts); diff != "" {
		t.Errorf("Filter() modified its input (-want +got):\n%s", diff)
	}
}

func TestFilter_EmptyNamespaceKeepsAllRuntime(t *testing.T) {
	arts := []FlatArtifact{
		{GroupID: "a", ArtifactID: "a", Version: "1", Scope: ScopeCompile},
		{GroupID: "b", ArtifactID: "b", Version: "1", Scope: ScopeTest},
	}
	got := keys(Filter(arts, ""))
	if diff := cmp.Diff([]string{"a:a:1"}, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestExcludeNamespaces(t *testing.T) {
	arts := []FlatArtifact{
		{GroupID: "com.corp.shared", ArtifactID: "x", Version: "1"},
		{GroupID: "io.internal", ArtifactID: "y", Version: "1"},
		{GroupID: "org.public", ArtifactID: "z", Version: "1"},
	}
	got := keys(ExcludeNamespaces(arts, "com.corp", "io.internal"))
	if diff := cmp.Diff([]string{"org.public:z:1"}, got); diff != "" {
		t.Errorf("ExcludeNamespaces() mismatch (-want +got):\n%s", diff)
	}
	if got := ExcludeNamespaces(arts); len(got) != len(arts) {
		t.Errorf("ExcludeNamespaces() with no namespaces = %d artifacts, want %d", len(got), len(arts))
	}
}

func TestFlattenThenFilter(t *testing.T) {
	root := &Artifact{
		GroupID: "com.acme", ArtifactID: "app", Version: "1.0",
		Children: []*Artifact{
			{GroupID: "com.lib", ArtifactID: "foo", Version: "1.0", Scope: ScopeCompile},
			{GroupID: "com.acme.sub", ArtifactID: "bar", Version: "2.0", Scope: ScopeCompile},
			{GroupID: "com.lib", ArtifactID: "foo", Version: "1.0", Scope: ScopeTest},
		},
	}

	got := Filter(Flatten(root), root.GroupID)
	want := []FlatArtifact{{GroupID: "com.lib", ArtifactID: "foo", Version: "1.0", Scope: ScopeCompile}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter(Flatten()) mismatch (-want +got):\n%s", diff)
	}
}
