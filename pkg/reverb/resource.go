package reverb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/reverb-client/internal/constants"
	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/gjson"
)

// Putter is the part of the client a Resource needs to persist changes.
type Putter interface {
	Put(ctx context.Context, path string, body interface{}) (*Response, error)
}

// Resource is a fetched HAL+JSON object, such as a listing, that can send
// updates back to its own self link.
//
// Fields are read by gjson path ("make", "price.amount", "_links.self.href").
// The cached attributes never change: Update does not refresh them, and the
// API's search index may lag writes, so re-fetch to observe server changes.
type Resource struct {
	raw    []byte
	client Putter
}

// NewResource wraps a JSON object. Client implementations call this; raw must
// be a JSON object.
func NewResource(raw []byte, client Putter) (*Resource, error) {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return nil, ErrNotAnObject
	}

	data := make([]byte, len(raw))
	copy(data, raw)

	return &Resource{raw: data, client: client}, nil
}

// Raw returns a copy of the underlying JSON.
func (r *Resource) Raw() []byte {
	data := make([]byte, len(r.raw))
	copy(data, r.raw)

	return data
}

// Get returns the gjson result at path.
func (r *Resource) Get(path string) gjson.Result {
	return gjson.GetBytes(r.raw, path)
}

// Lookup returns the value at path and whether it exists.
func (r *Resource) Lookup(path string) (interface{}, bool) {
	result := r.Get(path)
	if !result.Exists() {
		return nil, false
	}

	return result.Value(), true
}

// String returns the value at path as a string, or "" when absent.
func (r *Resource) String(path string) string {
	return r.Get(path).String()
}

// Link returns the href of the named HAL relation.
func (r *Resource) Link(rel string) (string, bool) {
	result := r.Get("_links." + gjson.Escape(rel) + ".href")
	if !result.Exists() || result.String() == "" {
		return "", false
	}

	return result.String(), true
}

// SelfLink returns _links.self.href.
func (r *Resource) SelfLink() (string, bool) {
	return r.Link(constants.SelfRel)
}

// Attributes returns a fresh map of all top-level attributes.
func (r *Resource) Attributes() map[string]interface{} {
	attributes := make(map[string]interface{})
	_ = json.Unmarshal(r.raw, &attributes)

	return attributes
}

// Decode copies the attributes into out, typically a *Listing or *Webhook.
func (r *Resource) Decode(out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(r.Attributes())
	if err != nil {
		return fmt.Errorf("decoding resource: %w", err)
	}

	return nil
}

// Update PUTs attributes to the resource's self link and returns the raw
// response. The wrapper's cached attributes are left as they were.
func (r *Resource) Update(ctx context.Context, attributes interface{}) (*Response, error) {
	href, ok := r.SelfLink()
	if !ok {
		return nil, ErrMissingSelfLink
	}

	if r.client == nil {
		return nil, ErrNoClient
	}

	resp, err := r.client.Put(ctx, href, attributes)
	if err != nil {
		return resp, fmt.Errorf("updating resource: %w", err)
	}

	return resp, nil
}

// MarshalJSON renders the wrapped object; the client reference is not serialized.
func (r *Resource) MarshalJSON() ([]byte, error) {
	return r.Raw(), nil
}
