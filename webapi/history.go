package webapi

import (
	"context"
	"strconv"
	"strings"

	"go-raceresult/pkg/rrtypes"
)

// HistoryEntry is one recorded field change of a participant.
type HistoryEntry struct {
	ID          int              `json:"ID"`
	Bib         int              `json:"Bib"`
	PartID      int              `json:"PartID"`
	DateTime    rrtypes.DateTime `json:"DateTime"`
	FieldName   string           `json:"FieldName"`
	OldValue    any              `json:"OldValue"`
	NewValue    any              `json:"NewValue"`
	User        string           `json:"User"`
	Application string           `json:"Application"`
}

type HistoryEndpoint struct {
	event *EventApi
}

// Get returns the change history of one participant.
func (h *HistoryEndpoint) Get(ctx context.Context, id Identifier) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if err := h.event.getJSON(ctx, "history/get", id.param(nil), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ExcelExport returns the change history of a participant as a CSV file.
func (h *HistoryEndpoint) ExcelExport(ctx context.Context, id Identifier, lang string) ([]byte, error) {
	return h.event.get(ctx, "history/excelexport", id.param(Params{"lang": lang}))
}

func historyParams(id Identifier, contest int, field string, dateFrom, dateTo rrtypes.DateTime, filter string) Params {
	params := id.param(Params{
		"contest": contest,
		"field":   field,
		"filter":  filter,
	})
	if !dateFrom.IsZero() {
		params["dateFrom"] = dateFrom
	}
	if !dateTo.IsZero() {
		params["dateTo"] = dateTo
	}
	return params
}

// Delete removes history entries matching the filters.
func (h *HistoryEndpoint) Delete(ctx context.Context, id Identifier, contest int, field string, dateFrom, dateTo rrtypes.DateTime, filter string) error {
	_, err := h.event.get(ctx, "history/delete", historyParams(id, contest, field, dateFrom, dateTo, filter))
	return err
}

// Count returns the number of history entries matching the filters.
func (h *HistoryEndpoint) Count(ctx context.Context, id Identifier, contest int, field string, dateFrom, dateTo rrtypes.DateTime, filter string) (int, error) {
	body, err := h.event.get(ctx, "history/count", historyParams(id, contest, field, dateFrom, dateTo, filter))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(body)))
}
