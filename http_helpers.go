package ichor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Get performs an HTTP GET request to the API
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Do performs a request. Authentication is entirely in the URL,
// so only the user agent is set here. There is no retry.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient().Do(req)
}

// GetResponse performs an HTTP GET request on an API endpoint (a path
// relative to the key, without query string) and decodes the response
// into dst.
func (c *Client) GetResponse(endpoint string, values url.Values, dst interface{}) error {
	endpoint = "/" + strings.TrimLeft(endpoint, "/")
	start := time.Now()

	resp, err := c.Get(c.MakeValuesPath(values, "%s", endpoint))
	if err != nil {
		c.logger().Debug("api request failed",
			slog.String("endpoint", endpoint),
			slog.Duration("duration", time.Since(start)),
		)
		return errors.WithStack(scrubKey(err, c.Key))
	}

	c.logger().Debug("api request",
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	err = ParseAPIResponse(dst, endpoint, resp)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// MakePath crafts an API url from our configured base URL,
// version and key
func (c *Client) MakePath(format string, a ...interface{}) string {
	return c.MakeValuesPath(nil, format, a...)
}

// MakeValuesPath crafts an API url from our configured base URL,
// version and key, with optional query parameters
func (c *Client) MakeValuesPath(values url.Values, format string, a ...interface{}) string {
	base := strings.TrimRight(c.fullBase(), "/")
	subPath := strings.TrimLeft(fmt.Sprintf(format, a...), "/")
	path := fmt.Sprintf("%s/%s", base, subPath)
	if len(values) == 0 {
		return path
	}
	return fmt.Sprintf("%s?%s", path, values.Encode())
}

func asHTTPCodeError(endpoint string, res *http.Response) error {
	if res.StatusCode/100 != 2 {
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
		}
	}
	return nil
}

// ParseAPIResponse unmarshals an HTTP response into one of our response
// data structures. Non-2xx responses are turned into an *APIError without
// reading the body.
func ParseAPIResponse(dst interface{}, endpoint string, res *http.Response) error {
	if res == nil || res.Body == nil {
		return fmt.Errorf("No response from server")
	}

	bodyReader := res.Body
	defer bodyReader.Close()

	if he := asHTTPCodeError(endpoint, res); he != nil {
		// drain so the connection can be reused
		io.Copy(io.Discard, bodyReader)
		return he
	}

	body, err := io.ReadAll(bodyReader)
	if err != nil {
		return errors.WithStack(err)
	}

	var intermediate interface{}
	err = json.NewDecoder(bytes.NewReader(body)).Decode(&intermediate)
	if err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}

	dstType := reflect.TypeOf(dst)
	if dstType.Kind() == reflect.Ptr {
		dstType = dstType.Elem()
	}
	err = checkRequired(dstType, intermediate, "")
	if err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}

	err = json.Unmarshal(body, dst)
	if err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}

	return nil
}

// net/http puts the whole URL in *url.Error, key included.
func scrubKey(err error, key string) error {
	var ue *url.Error
	if key == "" || !errors.As(err, &ue) {
		return err
	}
	return &url.Error{
		Op:  ue.Op,
		URL: strings.Replace(ue.URL, key, "<key>", -1),
		Err: ue.Err,
	}
}
