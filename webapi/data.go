package webapi

import (
	"context"
	"strconv"
	"strings"
)

type DataEndpoint struct {
	event *EventApi
}

// Count returns the number of records matching the filter.
func (d *DataEndpoint) Count(ctx context.Context, filter string) (int, error) {
	body, err := d.event.get(ctx, "data/count", Params{"filter": filter})
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(body)))
}

// ListQuery describes a data/list request; Fields is the only required part.
type ListQuery struct {
	Fields          []string
	Filter          string
	Sort            []string
	LimitFrom       int
	LimitTo         int
	Groups          []string
	MultiplierField string
	SelectorResult  string
}

// List returns arbitrary records, one row per participant, one value per
// field expression.
func (d *DataEndpoint) List(ctx context.Context, query ListQuery) ([][]any, error) {
	params := Params{
		"fields":          query.Fields,
		"filter":          query.Filter,
		"limitFrom":       query.LimitFrom,
		"limitTo":         query.LimitTo,
		"multiplierField": query.MultiplierField,
		"selectorResult":  query.SelectorResult,
		"listFormat":      "JSON",
	}
	if len(query.Sort) > 0 {
		params["sort"] = query.Sort
	}
	if len(query.Groups) > 0 {
		params["groups"] = query.Groups
	}
	var rows [][]any
	if err := d.event.getJSON(ctx, "data/list", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Transformation aggregation modes.
const (
	TransformationCount = 0
	TransformationSum   = 1
	TransformationAvg   = 2
	TransformationMin   = 3
	TransformationMax   = 4
)

// Transformation builds a statistics matrix over colField x rowFields.
func (d *DataEndpoint) Transformation(ctx context.Context, colField string, rowFields []string, filter, field string, mode int, sortByValue bool) ([][]any, error) {
	params := Params{
		"colField":    colField,
		"rowFields":   rowFields,
		"filter":      filter,
		"field":       field,
		"mode":        mode,
		"sortByValue": sortByValue,
	}
	var rows [][]any
	if err := d.event.getJSON(ctx, "data/transformation", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
