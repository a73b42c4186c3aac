package document_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neonleaf/neonleaf-go/lib/document"
	"github.com/neonleaf/neonleaf-go/lib/exception"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
	"github.com/neonleaf/neonleaf-go/lib/test/testutils"
	"github.com/stretchr/testify/require"
)

func TestAddRequiresVersionAndDate(t *testing.T) {
	doc := testutils.NewDocument("a.json", testutils.NumberedRecords(2))
	before := doc.Clone()

	testCases := []struct {
		name   string
		record version.VersionRecord
		field  string
	}{
		{"empty version", version.VersionRecord{Version: "", Date: "2025-01-01", Content: []string{}}, "version"},
		{"blank version", version.VersionRecord{Version: "   ", Date: "2025-01-01"}, "version"},
		{"empty date", version.VersionRecord{Version: "v3", Date: ""}, "date"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := document.Add(doc, tc.record, true)

			var requiredErr *exception.RequiredFieldError
			require.True(t, errors.As(err, &requiredErr))
			require.Equal(t, tc.field, requiredErr.Field)
			if diff := cmp.Diff(before, got); diff != "" {
				t.Errorf("Add() changed the document on failure (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddAtStartAndEnd(t *testing.T) {
	doc := testutils.NewDocument("a.json", testutils.NumberedRecords(2))

	atStart, err := document.Add(doc, version.VersionRecord{Version: "v0", Date: "2024-12-31"}, true)
	require.NoError(t, err)
	require.Equal(t, []string{"v0", "v1", "v2"}, versionsOf(atStart.Records))
	require.NotNil(t, atStart.Records[0].Content)

	atEnd, err := document.Add(doc, version.VersionRecord{Version: "v3", Date: "2025-01-03"}, false)
	require.NoError(t, err)
	require.Equal(t, []string{"v1", "v2", "v3"}, versionsOf(atEnd.Records))

	require.Equal(t, []string{"v1", "v2"}, versionsOf(doc.Records), "input document must not change")
	require.Equal(t, "a.json", atEnd.Name)
}

func TestAddAcceptsDuplicateVersion(t *testing.T) {
	doc := testutils.NewDocument("a.json", testutils.NumberedRecords(1))
	doc, err := document.Add(doc, version.VersionRecord{Version: "v1", Date: "2025-05-05"}, false)
	require.NoError(t, err)
	require.Equal(t, []string{"v1", "v1"}, versionsOf(doc.Records))
}

func TestUpdateReplacesAllMatches(t *testing.T) {
	doc := testutils.NewDocument("a.json", []version.VersionRecord{
		{Version: "v1", Date: "2025-01-01", Content: []string{}},
		{Version: "v2", Date: "2025-01-02", Content: []string{}},
		{Version: "v1", Date: "2025-01-03", Content: []string{"x"}},
	})

	updated, replaced := document.Update(doc, version.VersionRecord{Version: "v1", Date: "2026-01-01", Content: []string{"new"}})
	require.Equal(t, 2, replaced)
	require.Equal(t, "2026-01-01", updated.Records[0].Date)
	require.Equal(t, "2025-01-02", updated.Records[1].Date)
	require.Equal(t, "2026-01-01", updated.Records[2].Date)
	require.Equal(t, []string{"new"}, updated.Records[2].Content)

	require.Equal(t, "2025-01-01", doc.Records[0].Date, "input document must not change")
}

func TestUpdateWithoutMatchLeavesStoreUnchanged(t *testing.T) {
	doc := testutils.NewDocument("a.json", testutils.GenerateVersionRecords(10))
	updated, replaced := document.Update(doc, version.VersionRecord{Version: "does-not-exist", Date: "2025-01-01"})
	require.Zero(t, replaced)
	if diff := cmp.Diff(doc, updated); diff != "" {
		t.Errorf("Update() without match changed the document (-want +got):\n%s", diff)
	}
}

func TestDeleteRemovesAllMatches(t *testing.T) {
	doc := testutils.NewDocument("a.json", []version.VersionRecord{
		{Version: "v1", Date: "2025-01-01", Content: []string{}},
		{Version: "v2", Date: "2025-01-02", Content: []string{}},
		{Version: "v1", Date: "2025-01-03", Content: []string{}},
	})

	deleted, removed := document.Delete(doc, "v1")
	require.Equal(t, 2, removed)
	require.Equal(t, []string{"v2"}, versionsOf(deleted.Records))

	same, removed := document.Delete(deleted, "v9")
	require.Zero(t, removed)
	if diff := cmp.Diff(deleted, same); diff != "" {
		t.Errorf("Delete() of missing key changed the document (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	doc := testutils.NewDocument("a.json", testutils.NumberedRecords(3))
	record, ok := document.Find(doc, "v2")
	require.True(t, ok)
	require.Equal(t, "2025-01-02", record.Date)

	_, ok = document.Find(doc, "v9")
	require.False(t, ok)
}

func TestContentItemOperations(t *testing.T) {
	content := []string{"a", "b", "c"}

	require.Equal(t, []string{"a", "b", "c", ""}, document.AddContentItem(content))
	require.Equal(t, []string{""}, document.AddContentItem(nil))

	require.Equal(t, []string{"a", "c"}, document.RemoveContentItem(content, 1))
	require.Equal(t, []string{"a", "b", "c"}, document.RemoveContentItem(content, 3))
	require.Equal(t, []string{"a", "b", "c"}, document.RemoveContentItem(content, -1))
	require.Equal(t, []string{}, document.RemoveContentItem(nil, 0))

	require.Equal(t, []string{"a", "B", "c"}, document.SetContentItem(content, 1, "B"))
	require.Equal(t, []string{"a", "b", "c"}, document.SetContentItem(content, 7, "X"))

	require.Equal(t, []string{"a", "b", "c"}, content, "input content must not change")
}
