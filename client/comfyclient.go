package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// ComfyClient talks to the HTTP routes of a ComfyUI server that has the anime
// name helper extension installed.
type ComfyClient struct {
	serverBaseAddress string
	serverAddress     string
	serverPort        int
	scheme            string
	httpclient        *http.Client
}

// NewComfyClient creates a client for the server at server_address:server_port
// using plain http.
func NewComfyClient(server_address string, server_port int) *ComfyClient {
	return NewComfyClientWithScheme("http", server_address, server_port)
}

// NewComfyClientWithScheme creates a client using the given scheme (http or https).
func NewComfyClientWithScheme(scheme string, server_address string, server_port int) *ComfyClient {
	if scheme == "" {
		scheme = "http"
	}
	return &ComfyClient{
		serverBaseAddress: server_address + ":" + strconv.Itoa(server_port),
		serverAddress:     server_address,
		serverPort:        server_port,
		scheme:            scheme,
		httpclient:        &http.Client{},
	}
}

// BaseURL returns the scheme and host:port requests are sent to.
func (c *ComfyClient) BaseURL() string {
	return fmt.Sprintf("%s://%s", c.scheme, c.serverBaseAddress)
}

// return the underlying http client
func (c *ComfyClient) HttpClient() *http.Client {
	return c.httpclient
}

// set the underlying http client
func (c *ComfyClient) SetHttpClient(client *http.Client) {
	c.httpclient = client
}

// getJSON issues a GET for route (path plus optional encoded query) and decodes
// a 200 response body into out. Any other status becomes a *StatusError.
func (c *ComfyClient) getJSON(ctx context.Context, route string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL()+route, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", route, err)
	}

	if resp.StatusCode != http.StatusOK {
		return newStatusError(route, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s: %w", route, err)
	}
	return nil
}
