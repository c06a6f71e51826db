package profile

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"github.com/youruser/playercard/internal/util"
)

const (
	DefaultBaseURL   = "https://api-takumi.mihoyo.com/binding/api"
	DefaultOSBaseURL = "https://api-os-takumi.mihoyo.com/binding/api"

	gameRolesPath = "/getUserGameRolesByCookie"
	gameBizCN     = "nap_cn"
	gameBizOS     = "nap_global"

	defaultTimeout  = 12 * time.Second
	defaultRetryMax = 2

	// osUIDLen is the length from which a UID belongs to a global server.
	osUIDLen = 10
)

// Client reads the account summary from the game roles endpoint.
type Client struct {
	BaseURL   string
	OSBaseURL string
	Cookie    string

	// HTTP is the transport. A Client built without NewClient gets a
	// default retrying client on first use.
	HTTP *retryablehttp.Client

	once sync.Once
}

// NewClient returns a Client using the default endpoints.
func NewClient(cookie string, timeout time.Duration, retryMax int) *Client {
	return &Client{
		BaseURL:   DefaultBaseURL,
		OSBaseURL: DefaultOSBaseURL,
		Cookie:    cookie,
		HTTP:      util.NewHTTPClient(timeout, retryMax),
	}
}

// IsOverseas reports whether uid belongs to a global server.
func IsOverseas(uid string) bool {
	return len(uid) >= osUIDLen
}

func (c *Client) rolesURL(uid string) string {
	base, biz := c.BaseURL, gameBizCN
	if IsOverseas(uid) {
		base, biz = c.OSBaseURL, gameBizOS
	}
	q := url.Values{"game_biz": {biz}}
	return strings.TrimRight(base, "/") + gameRolesPath + "?" + q.Encode()
}

func (c *Client) transport() *retryablehttp.Client {
	c.once.Do(func() {
		if c.HTTP == nil {
			c.HTTP = util.NewHTTPClient(defaultTimeout, defaultRetryMax)
		}
	})
	return c.HTTP
}

// GetUserInfo implements DataSource.
func (c *Client) GetUserInfo(ctx context.Context, uid string) Result {
	header := http.Header{}
	if c.Cookie != "" {
		header.Set("Cookie", c.Cookie)
	}
	body, err := util.GetBytes(ctx, c.transport(), c.rolesURL(uid), header)
	if err != nil {
		var se *util.StatusError
		if errors.As(err, &se) {
			return Fail(se.Status)
		}
		return Fail(CodeRequestFailed)
	}
	return parseRoles(body, uid)
}

// parseRoles picks the role matching uid out of a roles response:
//
//	{"retcode":0,"data":{"list":[{"game_uid":"..","nickname":"..","level":60,"region_name":".."}]}}
func parseRoles(body []byte, uid string) Result {
	if !gjson.ValidBytes(body) {
		return Fail(CodeRequestFailed)
	}
	doc := gjson.ParseBytes(body)
	if rc := doc.Get("retcode").Int(); rc != 0 {
		return Fail(int(rc))
	}

	var out Result
	found := false
	doc.Get("data.list").ForEach(func(_, role gjson.Result) bool {
		if role.Get("game_uid").String() != uid {
			return true
		}
		out = OK(Record{
			UID:        uid,
			Nickname:   role.Get("nickname").String(),
			Level:      int(role.Get("level").Int()),
			RegionName: role.Get("region_name").String(),
		})
		found = true
		return false
	})
	if !found {
		return Fail(CodeNoAccount)
	}
	return out
}
