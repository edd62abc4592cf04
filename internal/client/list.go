package client

import (
	"context"
	"net/http"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
)

// listPage fetches one page of T from path.
func listPage[T any](ctx context.Context, base *outseta.Client, path string, req *outseta.PageRequest) (*outseta.ItemPage[T], error) {
	body, err := base.Get(ctx, path, req.BuildParams())
	if err != nil {
		return nil, err
	}

	return outseta.FromWirePage[T](base.Serializer(), body)
}

// getOne fetches a single T from path.
func getOne[T any](ctx context.Context, base *outseta.Client, path string) (*T, error) {
	body, err := base.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	return outseta.FromWire[T](base.Serializer(), body)
}

// send writes payload to path with method and decodes the stored T. An
// empty reply returns payload unchanged.
func send[T any](ctx context.Context, base *outseta.Client, method, path string, payload *T) (*T, error) {
	wire, err := outseta.ToWire(base.Serializer(), payload)
	if err != nil {
		return nil, err
	}

	resp, err := base.Do(ctx, &outseta.Call{Method: method, Path: path, Body: wire})
	if err != nil {
		return nil, err
	}

	if len(resp.Body) == 0 || resp.StatusCode == http.StatusNoContent {
		return payload, nil
	}

	return outseta.FromWire[T](base.Serializer(), string(resp.Body))
}
