package document_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neonleaf/neonleaf-go/lib/document"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
	"github.com/neonleaf/neonleaf-go/lib/test/testutils"
	"github.com/stretchr/testify/require"
)

func versionsOf(records []version.VersionRecord) []string {
	versions := make([]string, 0, len(records))
	for _, r := range records {
		versions = append(versions, r.Version)
	}
	return versions
}

func TestFilterHasContent(t *testing.T) {
	store := []version.VersionRecord{
		{Version: "v1", Date: "2025-01-01", Content: []string{}},
		{Version: "v2", Date: "2025-02-01", Content: []string{"a"}},
	}

	got := document.Filter(store, version.FilterSpec{HasContent: version.HasContentYes})
	require.Equal(t, []string{"v2"}, versionsOf(got))

	got = document.Filter(store, version.FilterSpec{HasContent: version.HasContentNo})
	require.Equal(t, []string{"v1"}, versionsOf(got))
}

func TestFilterPredicates(t *testing.T) {
	store := []version.VersionRecord{
		{Version: "V1.0.0", Date: "2025-01-10", Content: []string{"a"}},
		{Version: "v1.1.0", Date: "2025-02-10", Content: []string{}},
		{Version: "v2.0.0", Date: "2025-03-10", Content: []string{"b"}},
		{Version: "v1.1.0", Date: "2025-04-10", Content: []string{"c"}},
	}

	testCases := []struct {
		name string
		spec version.FilterSpec
		want []string
	}{
		{"search is case-insensitive", version.FilterSpec{Search: "v1."}, []string{"V1.0.0", "v1.1.0", "v1.1.0"}},
		{"search upper", version.FilterSpec{Search: "V2"}, []string{"v2.0.0"}},
		{"selected version is exact", version.FilterSpec{SelectedVersion: "v1.1.0"}, []string{"v1.1.0", "v1.1.0"}},
		{"selected version case matters", version.FilterSpec{SelectedVersion: "v1.0.0"}, []string{}},
		{"date from inclusive", version.FilterSpec{DateFrom: "2025-03-10"}, []string{"v2.0.0", "v1.1.0"}},
		{"date to inclusive", version.FilterSpec{DateTo: "2025-02-10"}, []string{"V1.0.0", "v1.1.0"}},
		{"date range", version.FilterSpec{DateFrom: "2025-02-01", DateTo: "2025-03-31"}, []string{"v1.1.0", "v2.0.0"}},
		{"combined", version.FilterSpec{Search: "1.1", HasContent: version.HasContentYes}, []string{"v1.1.0"}},
		{"no match", version.FilterSpec{Search: "zzz"}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := document.Filter(store, tc.spec)
			require.Equal(t, tc.want, versionsOf(got))
		})
	}
}

func TestFilterEmptySpecIsIdentity(t *testing.T) {
	records := testutils.GenerateVersionRecords(20)
	got := document.Filter(records, version.FilterSpec{})
	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("Filter() with empty spec changed records (-want +got):\n%s", diff)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	records := testutils.GenerateVersionRecords(50)
	specs := []version.FilterSpec{
		{Search: "v1"},
		{DateFrom: "2000-01-01", DateTo: "2015-12-31"},
		{HasContent: version.HasContentNo},
		{Search: "2", HasContent: version.HasContentYes, DateTo: "2020-01-01"},
	}
	for _, spec := range specs {
		once := document.Filter(records, spec)
		twice := document.Filter(once, spec)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Filter() not idempotent for %+v (-once +twice):\n%s", spec, diff)
		}
		require.LessOrEqual(t, len(once), len(records))
	}
}

func TestParseHasContent(t *testing.T) {
	testCases := []struct {
		input string
		want  version.HasContentFilter
	}{
		{"", version.HasContentUnset},
		{"all", version.HasContentUnset},
		{"yes", version.HasContentYes},
		{"TRUE", version.HasContentYes},
		{"no", version.HasContentNo},
		{"empty", version.HasContentNo},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := version.ParseHasContent(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := version.ParseHasContent("maybe")
	require.Error(t, err)
}
