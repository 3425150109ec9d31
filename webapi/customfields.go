package webapi

import (
	"context"

	"go-raceresult/model"
)

// CustomFieldsEndpoint manages the additional participant fields; the vendor
// path is "fields/...".
type CustomFieldsEndpoint struct {
	event *EventApi
}

// Get returns all custom fields.
func (c *CustomFieldsEndpoint) Get(ctx context.Context) ([]model.CustomField, error) {
	var fields []model.CustomField
	if err := c.event.getJSON(ctx, "fields/get", nil, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// GetOne returns a single custom field.
func (c *CustomFieldsEndpoint) GetOne(ctx context.Context, id int) (model.CustomField, error) {
	var field model.CustomField
	err := c.event.getJSON(ctx, "fields/get", Params{"id": id}, &field)
	return field, err
}

// Delete removes a custom field.
func (c *CustomFieldsEndpoint) Delete(ctx context.Context, id int) error {
	_, err := c.event.get(ctx, "fields/delete", Params{"id": id})
	return err
}

// Save stores custom fields and returns their IDs.
func (c *CustomFieldsEndpoint) Save(ctx context.Context, items []model.CustomField) ([]int, error) {
	var ids []int
	if err := c.event.postJSON(ctx, "fields/save", nil, items, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
