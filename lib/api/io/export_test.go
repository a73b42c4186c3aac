package io

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/neonleaf/neonleaf-go/lib/document"
	"github.com/neonleaf/neonleaf-go/lib/hooks/events"
	"github.com/neonleaf/neonleaf-go/lib/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportApi(t *testing.T) {
	testDBHandler := testutils.NewTestDBHandler(t)

	testDBHandler.AddTests(
		testutils.TestRunConfig{
			Name: "Export As Attachment",
			Test: testExportAttachment,
		},
		testutils.TestRunConfig{
			Name: "Export As Text",
			Test: testExportText,
		},
		testutils.TestRunConfig{
			Name: "Export Hook Renames File",
			Test: testExportHookRenames,
		},
		testutils.TestRunConfig{
			Name: "Export Unknown Document",
			Test: testExportUnknownDocument,
		},
	)
	testDBHandler.StartTestDBHandler()
}

func testExportAttachment(t *testing.T, tsStore testutils.TestDataStore) {
	Init(tsStore.ToInitStore())
	records := testutils.GenerateVersionRecords(4)
	info, err := tsStore.Manager.LoadDocument("changelog.json", testutils.VersionsJSON(records))
	require.NoError(t, err)

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/api/documents/"+info.Id+"/export", nil), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="changelog_edited.json"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	exported, err := document.Parse(string(body))
	require.NoError(t, err)
	if diff := cmp.Diff(records, exported); diff != "" {
		t.Errorf("exported records mismatch (-want +got):\n%s", diff)
	}
}

func testExportText(t *testing.T, tsStore testutils.TestDataStore) {
	Init(tsStore.ToInitStore())
	info, err := tsStore.Manager.LoadDocument("changelog.json", testutils.VersionsJSON(testutils.NumberedRecords(1)))
	require.NoError(t, err)

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/api/documents/"+info.Id+"/export/text", nil), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Empty(t, resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"version\": \"v1\",\n    \"date\": \"2025-01-01\",\n    \"content\": []\n  }\n]", string(body))
}

func testExportHookRenames(t *testing.T, tsStore testutils.TestDataStore) {
	Init(tsStore.ToInitStore())
	tsStore.Hooks.EnqueueDocumentExportHook(func(ctx *events.DocumentExportContext) {
		ctx.FileName = "renamed.json"
	})
	info, err := tsStore.Manager.LoadDocument("changelog.json", testutils.VersionsJSON(testutils.NumberedRecords(1)))
	require.NoError(t, err)

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/api/documents/"+info.Id+"/export", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, `attachment; filename="renamed.json"`, resp.Header.Get("Content-Disposition"))
}

func testExportUnknownDocument(t *testing.T, tsStore testutils.TestDataStore) {
	Init(tsStore.ToInitStore())

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/api/documents/nope/export", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
