package webapi

import (
	"context"

	"go-raceresult/model"
)

type BibRangesEndpoint struct {
	event *EventApi
}

// PDF returns a PDF document listing all bib ranges.
func (b *BibRangesEndpoint) PDF(ctx context.Context) ([]byte, error) {
	return b.event.get(ctx, "bibranges/pdf", nil)
}

// Get returns the bib ranges matching the filters; zero values match all.
func (b *BibRangesEndpoint) Get(ctx context.Context, contest, id int) ([]model.BibRange, error) {
	params := Params{
		"contest": contest,
		"id":      id,
	}
	var ranges []model.BibRange
	if err := b.event.getJSON(ctx, "bibranges/get", params, &ranges); err != nil {
		return nil, err
	}
	return ranges, nil
}

// Delete removes a bib range.
func (b *BibRangesEndpoint) Delete(ctx context.Context, id int) error {
	_, err := b.event.get(ctx, "bibranges/delete", Params{"id": id})
	return err
}

// Save stores bib ranges and returns their IDs.
func (b *BibRangesEndpoint) Save(ctx context.Context, items []model.BibRange) ([]int, error) {
	var ids []int
	if err := b.event.postJSON(ctx, "bibranges/save", nil, items, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
