package webapi

import (
	"context"

	"go-raceresult/model"
	"go-raceresult/pkg/rrtypes"
)

type AgeGroupsEndpoint struct {
	event *EventApi
}

// PDF returns a PDF document listing all age groups.
func (a *AgeGroupsEndpoint) PDF(ctx context.Context) ([]byte, error) {
	return a.event.get(ctx, "agegroups/pdf", nil)
}

// Get returns the age groups matching the filters; zero values match all.
func (a *AgeGroupsEndpoint) Get(ctx context.Context, contest, set int, name string) ([]model.AgeGroup, error) {
	params := Params{
		"contest": contest,
		"set":     set,
		"name":    name,
	}
	var groups []model.AgeGroup
	if err := a.event.getJSON(ctx, "agegroups/get", params, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Delete removes age groups by ID or by contest/set filter.
func (a *AgeGroupsEndpoint) Delete(ctx context.Context, id, contest, set int) error {
	params := Params{
		"id":      id,
		"contest": contest,
		"set":     set,
	}
	_, err := a.event.get(ctx, "agegroups/delete", params)
	return err
}

// Save stores age groups and returns their IDs.
func (a *AgeGroupsEndpoint) Save(ctx context.Context, items []model.AgeGroup) ([]int, error) {
	var ids []int
	if err := a.event.postJSON(ctx, "agegroups/save", nil, items, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Generate creates age groups from a template.
func (a *AgeGroupsEndpoint) Generate(ctx context.Context, mode string, contest, set int, ageBase bool, date rrtypes.DateTime, lang string) ([]model.AgeGroup, error) {
	params := Params{
		"mode":    mode,
		"contest": contest,
		"set":     set,
		"ageBase": ageBase,
		"lang":    lang,
	}
	if !date.IsZero() {
		params["date"] = date
	}
	var groups []model.AgeGroup
	if err := a.event.getJSON(ctx, "agegroups/generate", params, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Reassign recomputes the age group assignment of the matching participants.
func (a *AgeGroupsEndpoint) Reassign(ctx context.Context, contest int, id Identifier, set int, addOnly bool) error {
	params := id.param(Params{
		"contest": contest,
		"set":     set,
		"addOnly": addOnly,
	})
	_, err := a.event.get(ctx, "agegroups/reassign", params)
	return err
}
