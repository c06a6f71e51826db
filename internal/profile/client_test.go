package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rolesBody = `{
  "retcode": 0,
  "message": "OK",
  "data": {
    "list": [
      {"game_biz": "nap_cn", "game_uid": "10000001", "nickname": "Other", "level": 12, "region_name": "新艾利都"},
      {"game_biz": "nap_cn", "game_uid": "80000001", "nickname": "Agent", "level": 60, "region_name": "Asia"}
    ]
  }
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient("ltoken=abc", 2*time.Second, 0)
	c.BaseURL = srv.URL
	c.OSBaseURL = srv.URL + "/os"
	return c
}

func TestClient_GetUserInfo(t *testing.T) {
	var gotCookie, gotBiz, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotBiz = r.URL.Query().Get("game_biz")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(rolesBody))
	})

	res := c.GetUserInfo(context.Background(), "80000001")
	require.True(t, res.Ok(), res.String())
	rec, ok := res.Record()
	require.True(t, ok)
	assert.Equal(t, Record{UID: "80000001", Nickname: "Agent", Level: 60, RegionName: "Asia"}, rec)
	assert.Equal(t, 0, res.Code())

	assert.Equal(t, "ltoken=abc", gotCookie)
	assert.Equal(t, "nap_cn", gotBiz)
	assert.Equal(t, "/getUserGameRolesByCookie", gotPath)
}

func TestClient_OverseasUID(t *testing.T) {
	var gotBiz, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotBiz = r.URL.Query().Get("game_biz")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"retcode":0,"data":{"list":[{"game_uid":"1300000001","nickname":"Belle","level":45,"region_name":"Asia"}]}}`))
	})

	res := c.GetUserInfo(context.Background(), "1300000001")
	require.True(t, res.Ok())
	assert.Equal(t, "nap_global", gotBiz)
	assert.Equal(t, "/os/getUserGameRolesByCookie", gotPath)
}

func TestClient_ZeroValueTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rolesBody))
	}))
	t.Cleanup(srv.Close)

	c := &Client{BaseURL: srv.URL}
	res := c.GetUserInfo(context.Background(), "80000001")
	require.True(t, res.Ok(), res.String())
	assert.NotNil(t, c.HTTP)
}

func TestClient_FailureCodes(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
		want int
	}{
		{
			name: "retcode passed through",
			h: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"retcode":-100,"message":"please login"}`))
			},
			want: -100,
		},
		{
			name: "http status",
			h: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			want: http.StatusNotFound,
		},
		{
			name: "uid not bound",
			h: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"retcode":0,"data":{"list":[]}}`))
			},
			want: CodeNoAccount,
		},
		{
			name: "garbage body",
			h: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			want: CodeRequestFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.h)
			res := c.GetUserInfo(context.Background(), "80000001")
			assert.False(t, res.Ok())
			assert.Equal(t, tt.want, res.Code())
			_, ok := res.Record()
			assert.False(t, ok)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	c := NewClient("", 500*time.Millisecond, 0)
	c.BaseURL = "http://127.0.0.1:1"
	res := c.GetUserInfo(context.Background(), "80000001")
	assert.Equal(t, CodeRequestFailed, res.Code())
}

func TestFuncAdapter(t *testing.T) {
	var src DataSource = Func(func(_ context.Context, uid string) Result {
		return Fail(404)
	})
	res := src.GetUserInfo(context.Background(), "1")
	assert.False(t, res.Ok())
	assert.Equal(t, 404, res.Code())
	assert.Equal(t, "fail(404)", res.String())
}

func TestIsOverseas(t *testing.T) {
	assert.False(t, IsOverseas("80000001"))
	assert.True(t, IsOverseas("1000000001"))
}
