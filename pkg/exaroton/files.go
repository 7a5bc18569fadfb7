package exaroton

import (
	"bytes"
	"context"
	"net/http"
)

// GetFileInfo fetches metadata for a file or directory on the server.
// Directory info includes one level of children.
func (c *Client) GetFileInfo(ctx context.Context, serverID, path string) (*FileInfo, error) {
	var info FileInfo
	if err := c.get(ctx, filePath(fileInfoEndpoint, serverID, path), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ReadFile downloads the raw content of a file on the server.
func (c *Client) ReadFile(ctx context.Context, serverID, path string) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, filePath(fileDataEndpoint, serverID, path), nil)
}

// WriteFile replaces the content of a file on the server, creating it and any
// missing parent directories if necessary.
func (c *Client) WriteFile(ctx context.Context, serverID, path string, data []byte) error {
	_, err := c.doRaw(ctx, http.MethodPut, filePath(fileDataEndpoint, serverID, path), bytes.NewReader(data))
	return err
}

// DeleteFile deletes a file or directory on the server.
func (c *Client) DeleteFile(ctx context.Context, serverID, path string) error {
	_, err := c.doRaw(ctx, http.MethodDelete, filePath(fileDataEndpoint, serverID, path), nil)
	return err
}

// GetConfigOptions fetches a parsed server config file as typed options.
func (c *Client) GetConfigOptions(ctx context.Context, serverID, path string) ([]ConfigOption, error) {
	var options []ConfigOption
	if err := c.get(ctx, filePath(fileConfigEndpoint, serverID, path), &options); err != nil {
		return nil, err
	}
	return options, nil
}

// UpdateConfigOptions changes option values in a server config file and
// returns the updated options. Keys not present in the file are rejected by
// the API.
func (c *Client) UpdateConfigOptions(ctx context.Context, serverID, path string, values map[string]any) ([]ConfigOption, error) {
	var options []ConfigOption
	if err := c.post(ctx, filePath(fileConfigEndpoint, serverID, path), values, &options); err != nil {
		return nil, err
	}
	return options, nil
}
