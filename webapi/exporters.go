package webapi

import (
	"context"
	"strconv"
	"strings"

	"go-raceresult/pkg/rrtypes"
)

// Exporter forwards passings to an external destination as they come in.
type Exporter struct {
	ID                 int             `json:"ID"`
	Name               string          `json:"Name"`
	Filter             string          `json:"Filter"`
	TriggerTimingPoint string          `json:"TriggerTimingPoint"`
	TriggerSplit       string          `json:"TriggerSplit"`
	TriggerResultID    int             `json:"TriggerResultID"`
	DestinationType    string          `json:"DestinationType"`
	Destination        string          `json:"Destination"`
	Data               string          `json:"Data"`
	MTB                int             `json:"MTB"`
	MQL                int             `json:"MQL"`
	LineEnding         string          `json:"LineEnding"`
	StartPaused        bool            `json:"StartPaused"`
	IgnoreBefore       rrtypes.Decimal `json:"IgnoreBefore"`
	IgnoreAfter        rrtypes.Decimal `json:"IgnoreAfter"`
	Encoding           string          `json:"Encoding"`
	ConnectMsg         string          `json:"ConnectMsg"`
	OrderPos           int             `json:"OrderPos"`
}

type ExportersEndpoint struct {
	event *EventApi
}

// Get returns all exporters.
func (e *ExportersEndpoint) Get(ctx context.Context) ([]Exporter, error) {
	var exporters []Exporter
	if err := e.event.getJSON(ctx, "exporters/get", nil, &exporters); err != nil {
		return nil, err
	}
	return exporters, nil
}

// GetOne returns a single exporter.
func (e *ExportersEndpoint) GetOne(ctx context.Context, id int) (Exporter, error) {
	var exporter Exporter
	err := e.event.getJSON(ctx, "exporters/get", Params{"id": id}, &exporter)
	return exporter, err
}

// Delete removes an exporter.
func (e *ExportersEndpoint) Delete(ctx context.Context, id int) error {
	_, err := e.event.get(ctx, "exporters/delete", Params{"id": id})
	return err
}

// Save stores an exporter and returns its ID.
func (e *ExportersEndpoint) Save(ctx context.Context, item Exporter) (int, error) {
	body, err := e.event.post(ctx, "exporters/save", nil, item, "application/json")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(body)))
}
