package webapi

import (
	"context"

	"go-raceresult/model"
)

// RegistrationsEndpoint manages registration forms, which are keyed by name.
type RegistrationsEndpoint struct {
	event *EventApi
}

// Names returns the names of all registration forms.
func (r *RegistrationsEndpoint) Names(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.event.getJSON(ctx, "registrations/names", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Get returns a registration form definition.
func (r *RegistrationsEndpoint) Get(ctx context.Context, name string) (model.Registration, error) {
	var reg model.Registration
	err := r.event.getJSON(ctx, "registrations/get", Params{"name": name}, &reg)
	return reg, err
}

// Save stores a registration form.
func (r *RegistrationsEndpoint) Save(ctx context.Context, reg model.Registration) error {
	return r.event.postJSON(ctx, "registrations/save", nil, reg, nil)
}

// Delete removes a registration form.
func (r *RegistrationsEndpoint) Delete(ctx context.Context, name string) error {
	_, err := r.event.get(ctx, "registrations/delete", Params{"name": name})
	return err
}

// Copy duplicates a registration form.
func (r *RegistrationsEndpoint) Copy(ctx context.Context, name, newName string) error {
	_, err := r.event.get(ctx, "registrations/copy", Params{"name": name, "newName": newName})
	return err
}

// Rename renames a registration form.
func (r *RegistrationsEndpoint) Rename(ctx context.Context, name, newName string) error {
	_, err := r.event.get(ctx, "registrations/rename", Params{"name": name, "newName": newName})
	return err
}

// New creates an empty registration form, optionally for group registrations.
func (r *RegistrationsEndpoint) New(ctx context.Context, name string, group bool) error {
	_, err := r.event.get(ctx, "registrations/new", Params{"name": name, "group": group})
	return err
}
