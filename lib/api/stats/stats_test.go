package stats

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neonleaf/neonleaf-go/lib/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthPasses(t *testing.T) {
	tsStore := testutils.NewTestDataStore(testutils.NewFailingDataStore())
	defer tsStore.Hub.Stop()
	Init(tsStore.ToInitStore())

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/health", nil), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	health := testutils.DecodeJSON[HealthResponse](t, resp)
	assert.Equal(t, StatusPass, health.Status)
	assert.Equal(t, "neonleaf-api", health.ServiceID)
	require.Len(t, health.Checks["database"], 1)
	assert.Equal(t, StatusPass, health.Checks["database"][0].Status)
	require.Len(t, health.Checks["editor"], 1)
	assert.EqualValues(t, 0, health.Checks["editor"][0].Observed)
}

func TestHealthFailsWhenStoreIsDown(t *testing.T) {
	store := testutils.NewFailingDataStore()
	tsStore := testutils.NewTestDataStore(store)
	defer tsStore.Hub.Stop()
	Init(tsStore.ToInitStore())
	store.FailWrites(true)

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/health", nil), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	health := testutils.DecodeJSON[HealthResponse](t, resp)
	assert.Equal(t, StatusFail, health.Status)
	assert.Equal(t, testutils.ErrStoreUnavailable.Error(), health.Checks["database"][0].Output)
}

func TestMetricsCountMutations(t *testing.T) {
	tsStore := testutils.NewTestDataStore(testutils.NewFailingDataStore())
	defer tsStore.Hub.Stop()
	Init(tsStore.ToInitStore())

	info, err := tsStore.Manager.LoadDocument("release.json", testutils.VersionsJSON(testutils.NumberedRecords(2)))
	require.NoError(t, err)
	_, err = tsStore.Manager.DeleteRecord(info.Id, "v1")
	require.NoError(t, err)

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `neonleaf_document_mutations_total{op="delete"}`)
	assert.Contains(t, string(body), "neonleaf_loaded_documents 1")
}

func TestMetricsDisabled(t *testing.T) {
	tsStore := testutils.NewTestDataStore(testutils.NewFailingDataStore())
	defer tsStore.Hub.Stop()
	tsStore.Settings.EnableMetrics = false
	Init(tsStore.ToInitStore())

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
