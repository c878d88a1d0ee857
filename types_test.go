package ichor

import (
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func Test_UserFlagsDefaultToFalse(t *testing.T) {
	r := &Me{}
	err := ParseAPIResponse(r, "/me", fakeResponse(200, `{"user":{"id":5119994,"username":"ichor","url":"https://ichor.itch.io"}}`))
	require.NoError(t, err)

	assert.EqualValues(t, 5119994, r.User.ID)
	assert.False(t, r.User.Gamer)
	assert.False(t, r.User.PressUser)
	assert.False(t, r.User.Developer)
	assert.Nil(t, r.User.DisplayName)
	assert.Nil(t, r.User.CoverURL)
}

func Test_CredentialsInfo(t *testing.T) {
	r := &CredentialsInfo{}
	err := ParseAPIResponse(r, "/credentials/info", fakeResponse(200, `{"type":"key","scopes":{},"expires_at":null}`))
	require.NoError(t, err)

	assert.EqualValues(t, "key", r.Type)
	require.NotNil(t, r.Scopes)
	assert.True(t, r.Scopes.IsEmpty())
	assert.Nil(t, r.ExpiresAt)

	r = &CredentialsInfo{}
	err = ParseAPIResponse(r, "/credentials/info", fakeResponse(200, `{"type":"key","scopes":["profile:me"],"expires_at":"2022-01-01 00:00:00","extra":true}`))
	require.NoError(t, err)
	assert.EqualValues(t, []string{"profile:me"}, r.Scopes.Items())
	require.NotNil(t, r.ExpiresAt)
	assert.EqualValues(t, "2022-01-01 00:00:00", *r.ExpiresAt)

	r = &CredentialsInfo{}
	err = ParseAPIResponse(r, "/credentials/info", fakeResponse(200, `{"type":"key"}`))
	require.NoError(t, err)
	assert.Nil(t, r.Scopes)
}

func Test_RequiredFields(t *testing.T) {
	cases := []struct {
		name string
		dst  interface{}
		body string
		msg  string
	}{
		{
			name: "missing username",
			dst:  &Me{},
			body: `{"user":{"id":1,"url":"https://x.itch.io"}}`,
			msg:  `"user.username"`,
		},
		{
			name: "null required field",
			dst:  &CredentialsInfo{},
			body: `{"type":null}`,
			msg:  `"type"`,
		},
		{
			name: "missing envelope",
			dst:  &Me{},
			body: `{}`,
			msg:  `"user"`,
		},
		{
			name: "missing field in list element",
			dst:  &Purchases{},
			body: `{"purchases":[{"id":1}]}`,
			msg:  `"purchases[0].game_id"`,
		},
		{
			name: "tolerant list that's a string",
			dst:  &MyGames{},
			body: `{"games":"not a list"}`,
			msg:  "expected empty object or array",
		},
		{
			name: "wrong type",
			dst:  &DownloadKeys{},
			body: `{"download_key":{"id":"one","created_at":"","downloads":0,"key":"","game_id":1}}`,
			msg:  "cannot unmarshal",
		},
		{
			name: "negative unsigned",
			dst:  &Me{},
			body: `{"user":{"id":-1,"username":"a","url":"b"}}`,
			msg:  "cannot unmarshal",
		},
		{
			name: "null body",
			dst:  &Me{},
			body: `null`,
			msg:  "expected object, got null",
		},
		{
			name: "null envelope",
			dst:  &Me{},
			body: `{"user":null}`,
			msg:  `"user": expected object, got null`,
		},
		{
			name: "null game in list",
			dst:  &MyGames{},
			body: `{"games":[null]}`,
			msg:  `"games[0]": expected object, got null`,
		},
		{
			name: "null purchase in list",
			dst:  &Purchases{},
			body: `{"purchases":[null]}`,
			msg:  `"purchases[0]": expected object, got null`,
		},
		{
			name: "null scope",
			dst:  &CredentialsInfo{},
			body: `{"type":"key","scopes":[null]}`,
			msg:  `"scopes[0]": expected string, got null`,
		},
		{
			name: "null tolerant list",
			dst:  &MyGames{},
			body: `{"games":null}`,
			msg:  `"games": expected empty object or array, got null`,
		},
		{
			name: "null flag",
			dst:  &Me{},
			body: `{"user":{"id":1,"username":"a","url":"b","gamer":null}}`,
			msg:  `"user.gamer": expected boolean, got null`,
		},
		{
			name: "not json",
			dst:  &Me{},
			body: `<html>oh no</html>`,
			msg:  "invalid character",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ParseAPIResponse(c.dst, "/test", fakeResponse(200, c.body))
			require.Error(t, err)
			assert.True(t, IsDecodeError(err))
			assert.Contains(t, err.Error(), c.msg)
		})
	}
}

func Test_NonSuccessSkipsBody(t *testing.T) {
	for _, status := range []int{401, 403, 404, 500} {
		r := &Me{}
		// a perfectly decodable body, which must be ignored
		err := ParseAPIResponse(r, "/me", fakeResponse(status, `{"user":{"id":1,"username":"a","url":"b"}}`))
		require.Error(t, err)

		ae, ok := AsAPIError(err)
		require.True(t, ok)
		assert.EqualValues(t, status, ae.StatusCode)
		assert.EqualValues(t, "/me", ae.Endpoint)
		assert.EqualValues(t, 0, r.User.ID)
	}
}

func Test_GameHelpers(t *testing.T) {
	g := &Game{
		PlatformWindows: true,
		PlatformLinux:   true,
		CreatedAt:       "2021-11-12 10:30:00",
		PublishedAt:     "garbage",
	}
	assert.EqualValues(t, []string{"windows", "linux"}, g.Platforms())

	created, err := g.CreatedTime()
	require.NoError(t, err)
	assert.EqualValues(t, time.Date(2021, time.November, 12, 10, 30, 0, 0, time.UTC), created)

	_, err = g.PublishedTime()
	assert.Error(t, err)
}
