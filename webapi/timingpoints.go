package webapi

import (
	"context"

	"go-raceresult/model"
)

// TimingPointsEndpoint manages timing points, which are keyed by name.
type TimingPointsEndpoint struct {
	event *EventApi
}

// Get returns all timing points.
func (t *TimingPointsEndpoint) Get(ctx context.Context) ([]model.TimingPoint, error) {
	var points []model.TimingPoint
	if err := t.event.getJSON(ctx, "timingpoints/get", nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// GetOne returns a single timing point.
func (t *TimingPointsEndpoint) GetOne(ctx context.Context, name string) (model.TimingPoint, error) {
	var point model.TimingPoint
	err := t.event.getJSON(ctx, "timingpoints/get", Params{"name": name}, &point)
	return point, err
}

// Delete removes a timing point.
func (t *TimingPointsEndpoint) Delete(ctx context.Context, name string) error {
	_, err := t.event.get(ctx, "timingpoints/delete", Params{"name": name})
	return err
}

// Save stores a timing point; oldName carries the previous name on renames.
func (t *TimingPointsEndpoint) Save(ctx context.Context, item model.TimingPoint, oldName string) error {
	return t.event.postJSON(ctx, "timingpoints/save", Params{"oldName": oldName}, item, nil)
}
