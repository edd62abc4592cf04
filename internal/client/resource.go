package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

// ResourceClient provides a generic client for one collection of the
// remote API, e.g. /crm/accounts. Endpoint families expose it through the
// narrower interfaces in package outseta.
type ResourceClient[T any] struct {
	base         *outseta.Client
	resourcePath string
	resourceName string
}

// NewResourceClient creates a new generic resource client.
func NewResourceClient[T any](base *outseta.Client, resourcePath, resourceName string) *ResourceClient[T] {
	return &ResourceClient[T]{
		base:         base,
		resourcePath: resourcePath,
		resourceName: resourceName,
	}
}

func (c *ResourceClient[T]) itemPath(uid string) string {
	return c.resourcePath + "/" + url.PathEscape(uid)
}

// List retrieves one page of the collection.
func (c *ResourceClient[T]) List(ctx context.Context, req *outseta.PageRequest) (*outseta.ItemPage[T], error) {
	page, err := listPage[T](ctx, c.base, c.resourcePath, req)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.resourceName, err)
	}

	return page, nil
}

// Get retrieves a resource by UID.
func (c *ResourceClient[T]) Get(ctx context.Context, uid string) (*T, error) {
	err := outseta.RequireArgument("get "+c.resourceName, "uid", uid)
	if err != nil {
		return nil, err
	}

	item, err := getOne[T](ctx, c.base, c.itemPath(uid))
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.resourceName, err)
	}

	return item, nil
}

// Create creates a resource and returns it as stored.
func (c *ResourceClient[T]) Create(ctx context.Context, resource *T) (*T, error) {
	if resource == nil {
		return nil, outseta.NewArgumentError("create "+c.resourceName, c.resourceName)
	}

	item, err := send[T](ctx, c.base, http.MethodPost, c.resourcePath, resource)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	return item, nil
}

// Update replaces the resource with UID uid and returns it as stored.
func (c *ResourceClient[T]) Update(ctx context.Context, uid string, resource *T) (*T, error) {
	op := "update " + c.resourceName

	err := outseta.RequireArgument(op, "uid", uid)
	if err != nil {
		return nil, err
	}

	if resource == nil {
		return nil, outseta.NewArgumentError(op, c.resourceName)
	}

	item, err := send[T](ctx, c.base, http.MethodPut, c.itemPath(uid), resource)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.resourceName, err)
	}

	return item, nil
}

// Delete deletes the resource with UID uid.
func (c *ResourceClient[T]) Delete(ctx context.Context, uid string) error {
	err := outseta.RequireArgument("delete "+c.resourceName, "uid", uid)
	if err != nil {
		return err
	}

	err = c.base.Delete(ctx, c.itemPath(uid), nil)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.resourceName, err)
	}

	return nil
}
