package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/daimao-tools/animename/catalog"
	"github.com/daimao-tools/animename/graphapi"
)

/*
@routes.get("/extensions")
@routes.get("/object_info/{node_class}")
@routes.get("/anime_name_helper/get_anime_names")
*/

// AnimeNamesRoute is the extension route serving the character catalog.
const AnimeNamesRoute = "/anime_name_helper/get_anime_names"

// GetAnimeNames retrieves the characters matching query and filter. Both are
// free text and are percent-encoded. Records come back in server order.
func (c *ComfyClient) GetAnimeNames(ctx context.Context, query string, filter string) ([]catalog.CharacterRecord, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("filter", filter)

	retv := make([]catalog.CharacterRecord, 0)
	if err := c.getJSON(ctx, AnimeNamesRoute+"?"+params.Encode(), &retv); err != nil {
		return nil, err
	}
	return retv, nil
}

// GetObjectInfo retrieves the definition of a single node class.
func (c *ComfyClient) GetObjectInfo(ctx context.Context, nodeClass string) (*graphapi.NodeObject, error) {
	objects := &graphapi.NodeObjects{}
	route := "/object_info/" + url.PathEscape(nodeClass)
	if err := c.getJSON(ctx, route, &objects.Objects); err != nil {
		return nil, err
	}

	objects.PopulateInputProperties()
	obj := objects.GetNodeObjectByName(nodeClass)
	if obj == nil {
		return nil, fmt.Errorf("server has no node class %q", nodeClass)
	}
	return obj, nil
}

// GetExtensions retrieves the list of frontend extension scripts installed on the ComfyUI server.
func (c *ComfyClient) GetExtensions(ctx context.Context) ([]string, error) {
	retv := make([]string, 0)
	if err := c.getJSON(ctx, "/extensions", &retv); err != nil {
		return nil, err
	}
	return retv, nil
}

// HasExtension reports whether any installed extension script path contains name.
func (c *ComfyClient) HasExtension(ctx context.Context, name string) (bool, error) {
	extensions, err := c.GetExtensions(ctx)
	if err != nil {
		return false, err
	}
	for _, e := range extensions {
		if strings.Contains(e, name) {
			return true, nil
		}
	}
	return false, nil
}
