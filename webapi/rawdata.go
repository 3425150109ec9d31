package webapi

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"go-raceresult/model"
	"go-raceresult/pkg/rrtypes"
)

type RawDataEndpoint struct {
	event *EventApi
}

// rdFilterParam adds the raw data filter as a JSON query parameter.
func rdFilterParam(params Params, filter *model.RawDataFilter) Params {
	if filter == nil {
		return params
	}
	encoded, err := json.Marshal(filter)
	if err != nil {
		return params
	}
	params["rdFilter"] = string(encoded)
	return params
}

// ExcelExport returns the raw data of a participant as a CSV file.
func (r *RawDataEndpoint) ExcelExport(ctx context.Context, id Identifier, lang string) ([]byte, error) {
	return r.event.get(ctx, "rawdata/excelexport", id.param(Params{"lang": lang}))
}

// SetInvalid marks one raw data entry valid or invalid.
func (r *RawDataEndpoint) SetInvalid(ctx context.Context, id int, invalid bool) error {
	_, err := r.event.get(ctx, "rawdata/setinvalid", Params{"id": id, "invalid": invalid})
	return err
}

// SetInvalidBatch marks all matching raw data entries valid or invalid.
func (r *RawDataEndpoint) SetInvalidBatch(ctx context.Context, filter string, rdFilter *model.RawDataFilter, invalid bool) error {
	params := rdFilterParam(Params{
		"filter":  filter,
		"invalid": invalid,
	}, rdFilter)
	_, err := r.event.get(ctx, "rawdata/setinvalidbatch", params)
	return err
}

// DeleteID removes one raw data entry.
func (r *RawDataEndpoint) DeleteID(ctx context.Context, id int) error {
	_, err := r.event.get(ctx, "rawdata/deleteid", Params{"id": id})
	return err
}

// Delete removes raw data entries matching the filters.
func (r *RawDataEndpoint) Delete(ctx context.Context, id Identifier, filter string, rdFilter *model.RawDataFilter) error {
	params := rdFilterParam(id.param(Params{"filter": filter}), rdFilter)
	_, err := r.event.get(ctx, "rawdata/delete", params)
	return err
}

// Get returns raw data entries with resolved bibs and additional fields.
func (r *RawDataEndpoint) Get(ctx context.Context, id Identifier, filter string, rdFilter *model.RawDataFilter, addFields []string, firstRow, maxRows int, sortBy string) ([]model.RawDataWithAdditionalFields, error) {
	params := rdFilterParam(id.param(Params{
		"filter":   filter,
		"firstRow": firstRow,
		"maxRows":  maxRows,
		"sortBy":   sortBy,
	}), rdFilter)
	if len(addFields) > 0 {
		params["addFields"] = addFields
	}
	var entries []model.RawDataWithAdditionalFields
	if err := r.event.getJSON(ctx, "rawdata/get", params, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Export returns raw data as rows of the requested field values.
func (r *RawDataEndpoint) Export(ctx context.Context, id Identifier, filter string, rdFilter *model.RawDataFilter, fields []string, firstRow, maxRows int, sortBy string) ([][]any, error) {
	params := rdFilterParam(id.param(Params{
		"filter":   filter,
		"firstRow": firstRow,
		"maxRows":  maxRows,
		"sortBy":   sortBy,
	}), rdFilter)
	if len(fields) > 0 {
		params["fields"] = fields
	}
	var rows [][]any
	if err := r.event.getJSON(ctx, "rawdata/export", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of raw data entries matching the filters.
func (r *RawDataEndpoint) Count(ctx context.Context, id Identifier, filter string, rdFilter *model.RawDataFilter) (int, error) {
	params := rdFilterParam(id.param(Params{"filter": filter}), rdFilter)
	body, err := r.event.get(ctx, "rawdata/count", params)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(body)))
}

// DistinctValues returns the distinct decoder IDs, order IDs, voltages, hit
// and RSSI values seen in the raw data.
func (r *RawDataEndpoint) DistinctValues(ctx context.Context) (model.RawDataDistinctValues, error) {
	var values model.RawDataDistinctValues
	err := r.event.getJSON(ctx, "rawdata/distinctvalues", nil, &values)
	return values, err
}

// AddManual stores a manually recorded passing.
func (r *RawDataEndpoint) AddManual(ctx context.Context, timingPoint string, id Identifier, time rrtypes.Decimal, addT0 bool) error {
	params := id.param(Params{
		"timingPoint": timingPoint,
		"time":        time,
		"addT0":       addT0,
	})
	_, err := r.event.get(ctx, "rawdata/addmanual", params)
	return err
}

// Copy copies the raw data of one participant to another.
func (r *RawDataEndpoint) Copy(ctx context.Context, from, to Identifier) error {
	params := Params{
		from.Name + "From": from.Value,
		to.Name + "To":     to.Value,
	}
	_, err := r.event.get(ctx, "rawdata/copy", params)
	return err
}

// Swap exchanges the raw data of two participants.
func (r *RawDataEndpoint) Swap(ctx context.Context, id1, id2 Identifier) error {
	params := Params{
		id1.Name + "1": id1.Value,
		id2.Name + "2": id2.Value,
	}
	_, err := r.event.get(ctx, "rawdata/swap", params)
	return err
}
