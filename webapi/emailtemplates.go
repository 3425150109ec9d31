package webapi

import (
	"context"

	"go-raceresult/model"
)

// EmailTemplatesEndpoint manages email templates, which are keyed by name.
type EmailTemplatesEndpoint struct {
	event *EventApi
}

// Names returns the names of all email templates.
func (e *EmailTemplatesEndpoint) Names(ctx context.Context) ([]string, error) {
	var names []string
	if err := e.event.getJSON(ctx, "emailtemplates/names", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Get returns an email template.
func (e *EmailTemplatesEndpoint) Get(ctx context.Context, name string) (model.EmailTemplate, error) {
	var template model.EmailTemplate
	err := e.event.getJSON(ctx, "emailtemplates/get", Params{"name": name}, &template)
	return template, err
}

// Save stores an email template.
func (e *EmailTemplatesEndpoint) Save(ctx context.Context, template model.EmailTemplate) error {
	return e.event.postJSON(ctx, "emailtemplates/save", nil, template, nil)
}

// Delete removes an email template.
func (e *EmailTemplatesEndpoint) Delete(ctx context.Context, name string) error {
	_, err := e.event.get(ctx, "emailtemplates/delete", Params{"name": name})
	return err
}

// Copy duplicates an email template.
func (e *EmailTemplatesEndpoint) Copy(ctx context.Context, name, newName string) error {
	_, err := e.event.get(ctx, "emailtemplates/copy", Params{"name": name, "newName": newName})
	return err
}

// Rename renames an email template.
func (e *EmailTemplatesEndpoint) Rename(ctx context.Context, name, newName string) error {
	_, err := e.event.get(ctx, "emailtemplates/rename", Params{"name": name, "newName": newName})
	return err
}

// New creates an empty email template.
func (e *EmailTemplatesEndpoint) New(ctx context.Context, name string) error {
	_, err := e.event.get(ctx, "emailtemplates/new", Params{"name": name})
	return err
}

// Preview renders the template for the matching participants without sending.
func (e *EmailTemplatesEndpoint) Preview(ctx context.Context, name, filter, lang string) ([]model.Preview, error) {
	params := Params{
		"name":   name,
		"filter": filter,
		"lang":   lang,
	}
	var previews []model.Preview
	if err := e.event.getJSON(ctx, "emailtemplates/preview", params, &previews); err != nil {
		return nil, err
	}
	return previews, nil
}

// SendPreview sends one rendered preview.
func (e *EmailTemplatesEndpoint) SendPreview(ctx context.Context, name, lang string, preview model.Preview) error {
	return e.event.postJSON(ctx, "emailtemplates/sendpreview", Params{"name": name, "lang": lang}, preview, nil)
}

// Send sends the template to all matching participants.
func (e *EmailTemplatesEndpoint) Send(ctx context.Context, name, filter, lang string) error {
	params := Params{
		"name":   name,
		"filter": filter,
		"lang":   lang,
	}
	_, err := e.event.get(ctx, "emailtemplates/send", params)
	return err
}
