package api

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/neonleaf/neonleaf-go/lib/api/gate"
	"github.com/neonleaf/neonleaf-go/lib/editor"
	gate2 "github.com/neonleaf/neonleaf-go/lib/gate"
	"github.com/neonleaf/neonleaf-go/lib/hooks/events"
	"github.com/neonleaf/neonleaf-go/lib/models/version"
	"github.com/neonleaf/neonleaf-go/lib/test/testutils"
	"github.com/neonleaf/neonleaf-go/lib/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatedApi(t *testing.T) {
	testDBHandler := testutils.NewTestDBHandler(t)

	testDBHandler.AddTests(
		testutils.TestRunConfig{
			Name: "Documents Require Login",
			Test: testDocumentsRequireLogin,
		},
		testutils.TestRunConfig{
			Name: "Wrong Password Is Rejected",
			Test: testWrongPassword,
		},
		testutils.TestRunConfig{
			Name: "Login Unlocks Documents Until Logout",
			Test: testLoginFlow,
		},
		testutils.TestRunConfig{
			Name: "Disabled Gate Lets Everything Through",
			Test: testDisabledGate,
		},
		testutils.TestRunConfig{
			Name: "Feed Requires Login",
			Test: testFeedRequiresLogin,
		},
		testutils.TestRunConfig{
			Name: "Feed Delivers Document Changes",
			Test: testFeedDeliversChanges,
		},
	)
	testDBHandler.StartTestDBHandler()
}

func login(t *testing.T, tsStore testutils.TestDataStore, password string) *http.Response {
	t.Helper()
	req := testutils.JSONRequest(t, http.MethodPost, "/api/login", gate.LoginRequest{Password: password})
	resp, err := tsStore.App.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func withCookies(req *http.Request, cookies []*http.Cookie) *http.Request {
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return req
}

func testDocumentsRequireLogin(t *testing.T, tsStore testutils.TestDataStore) {
	InitAPI(tsStore.ToInitStore())

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/api/documents", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = tsStore.App.Test(testutils.MultipartRequest(t, "/api/documents", "a.json", "[]"), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/health", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func testWrongPassword(t *testing.T, tsStore testutils.TestDataStore) {
	InitAPI(tsStore.ToInitStore())

	resp := login(t, tsStore, "Agassi")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Cookies())

	resp = login(t, tsStore, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func testLoginFlow(t *testing.T, tsStore testutils.TestDataStore) {
	InitAPI(tsStore.ToInitStore())

	resp := login(t, tsStore, testutils.TestPassword)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	req := withCookies(testutils.MultipartRequest(t, "/api/documents", "release.json", testutils.VersionsJSON(testutils.NumberedRecords(2))), cookies)
	resp, err := tsStore.App.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	info := testutils.DecodeJSON[editor.DocumentInfo](t, resp)

	resp, err = tsStore.App.Test(withCookies(httptest.NewRequest(http.MethodGet, "/api/documents/"+info.Id+"/versions", nil), cookies), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = tsStore.App.Test(withCookies(httptest.NewRequest(http.MethodGet, "/api/session", nil), cookies), 5000)
	require.NoError(t, err)
	status := testutils.DecodeJSON[gate.SessionResponse](t, resp)
	assert.True(t, status.Authenticated)
	assert.True(t, status.GateEnabled)

	resp, err = tsStore.App.Test(withCookies(httptest.NewRequest(http.MethodPost, "/api/logout", nil), cookies), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = tsStore.App.Test(withCookies(httptest.NewRequest(http.MethodGet, "/api/documents", nil), cookies), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func testDisabledGate(t *testing.T, tsStore testutils.TestDataStore) {
	tsStore.Gate = gate2.NewGate("", false)
	InitAPI(tsStore.ToInitStore())

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/api/documents", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/api/session", nil), 5000)
	require.NoError(t, err)
	status := testutils.DecodeJSON[gate.SessionResponse](t, resp)
	assert.True(t, status.Authenticated)
	assert.False(t, status.GateEnabled)
}

func testFeedRequiresLogin(t *testing.T, tsStore testutils.TestDataStore) {
	InitAPI(tsStore.ToInitStore())
	info, err := tsStore.Manager.LoadDocument("release.json", testutils.VersionsJSON(testutils.NumberedRecords(1)))
	require.NoError(t, err)

	resp, err := tsStore.App.Test(httptest.NewRequest(http.MethodGet, "/ws/documents/"+info.Id, nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	cookies := login(t, tsStore, testutils.TestPassword).Cookies()
	resp, err = tsStore.App.Test(withCookies(httptest.NewRequest(http.MethodGet, "/ws/documents/missing", nil), cookies), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func testFeedDeliversChanges(t *testing.T, tsStore testutils.TestDataStore) {
	InitAPI(tsStore.ToInitStore())
	info, err := tsStore.Manager.LoadDocument("release.json", testutils.VersionsJSON(testutils.NumberedRecords(1)))
	require.NoError(t, err)
	cookies := login(t, tsStore, testutils.TestPassword).Cookies()
	require.NotEmpty(t, cookies)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = tsStore.App.Listener(ln)
	}()
	defer func() {
		_ = tsStore.App.ShutdownWithTimeout(5 * time.Second)
	}()

	header := http.Header{}
	for _, cookie := range cookies {
		header.Add("Cookie", cookie.Name+"="+cookie.Value)
	}
	conn, resp, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/ws/documents/"+info.Id, header)
	require.NoError(t, err)
	defer conn.Close()
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	require.Eventually(t, func() bool { return tsStore.Hub.RoomSize(info.Id) == 1 }, 5*time.Second, 10*time.Millisecond)

	_, err = tsStore.Manager.AddRecord(info.Id, version.VersionRecord{Version: "v9", Date: "2025-09-09", Content: []string{}}, false)
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var message ws.ChangeMessage
	require.NoError(t, conn.ReadJSON(&message))
	assert.Equal(t, ws.ChangeMessage{
		Type:       ws.DocumentChangedType,
		DocumentId: info.Id,
		Op:         events.OpAdd,
		Version:    "v9",
		Affected:   1,
		Records:    2,
	}, message)
}
