package webapi

import (
	"context"

	"go-raceresult/model"
)

type ResultsEndpoint struct {
	event *EventApi
}

// Get returns the results matching the filters.
func (r *ResultsEndpoint) Get(ctx context.Context, name string, onlyFormulas, onlyNoFormulas bool) ([]model.Result, error) {
	params := Params{
		"name":           name,
		"onlyFormulas":   onlyFormulas,
		"onlyNoFormulas": onlyNoFormulas,
	}
	var results []model.Result
	if err := r.event.getJSON(ctx, "results/get", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetOne returns a single result.
func (r *ResultsEndpoint) GetOne(ctx context.Context, id int) (model.Result, error) {
	var result model.Result
	err := r.event.getJSON(ctx, "results/get", Params{"id": id}, &result)
	return result, err
}

// Delete removes a result.
func (r *ResultsEndpoint) Delete(ctx context.Context, id int) error {
	_, err := r.event.get(ctx, "results/delete", Params{"id": id})
	return err
}

// Save stores results.
func (r *ResultsEndpoint) Save(ctx context.Context, items []model.Result) error {
	return r.event.postJSON(ctx, "results/save", nil, items, nil)
}
