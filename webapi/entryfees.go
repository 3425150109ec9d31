package webapi

import (
	"context"

	"go-raceresult/model"
)

type EntryFeesEndpoint struct {
	event *EventApi
}

// PDF returns a PDF document listing all entry fees.
func (e *EntryFeesEndpoint) PDF(ctx context.Context) ([]byte, error) {
	return e.event.get(ctx, "entryfees/pdf", nil)
}

// Get returns the entry fees matching the filters; zero values match all.
func (e *EntryFeesEndpoint) Get(ctx context.Context, contest, id int) ([]model.EntryFee, error) {
	params := Params{
		"contest": contest,
		"id":      id,
	}
	var fees []model.EntryFee
	if err := e.event.getJSON(ctx, "entryfees/get", params, &fees); err != nil {
		return nil, err
	}
	return fees, nil
}

// Delete removes an entry fee.
func (e *EntryFeesEndpoint) Delete(ctx context.Context, id int) error {
	_, err := e.event.get(ctx, "entryfees/delete", Params{"id": id})
	return err
}

// Save stores entry fees and returns their IDs.
func (e *EntryFeesEndpoint) Save(ctx context.Context, items []model.EntryFee) ([]int, error) {
	var ids []int
	if err := e.event.postJSON(ctx, "entryfees/save", nil, items, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
