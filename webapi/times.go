package webapi

import (
	"context"
	"strconv"
	"strings"

	"go-raceresult/model"
	"go-raceresult/pkg/rrtypes"
)

type TimesEndpoint struct {
	event *EventApi
}

// ExcelExport returns the times of a participant as a CSV file.
func (t *TimesEndpoint) ExcelExport(ctx context.Context, id Identifier, result int, lang string) ([]byte, error) {
	params := id.param(Params{
		"result": result,
		"lang":   lang,
	})
	return t.event.get(ctx, "times/excelexport", params)
}

// Delete removes times matching the filters.
func (t *TimesEndpoint) Delete(ctx context.Context, id Identifier, contest, result int, filter, filterInfo string) error {
	params := id.param(Params{
		"contest":    contest,
		"result":     result,
		"filter":     filter,
		"filterInfo": filterInfo,
	})
	_, err := t.event.get(ctx, "times/delete", params)
	return err
}

// Swap exchanges the times of two participants.
func (t *TimesEndpoint) Swap(ctx context.Context, id1, id2 Identifier) error {
	params := Params{
		id1.Name + "1": id1.Value,
		id2.Name + "2": id2.Value,
	}
	_, err := t.event.get(ctx, "times/swap", params)
	return err
}

// SingleStart generates interval start times into a result.
func (t *TimesEndpoint) SingleStart(ctx context.Context, result, contest int, firstTime, interval rrtypes.Decimal, sort, filter string, noHistory bool) error {
	params := Params{
		"result":    result,
		"contest":   contest,
		"firstTime": firstTime,
		"interval":  interval,
		"sort":      sort,
		"filter":    filter,
		"noHistory": noHistory,
	}
	_, err := t.event.get(ctx, "times/singlestart", params)
	return err
}

// RandomTimes fills a result with random times between minTime and maxTime.
func (t *TimesEndpoint) RandomTimes(ctx context.Context, result, contest int, minTime, maxTime rrtypes.Decimal, offsetResult int, filter string, noHistory bool) error {
	params := Params{
		"result":       result,
		"contest":      contest,
		"minTime":      minTime,
		"maxTime":      maxTime,
		"offsetResult": offsetResult,
		"filter":       filter,
		"noHistory":    noHistory,
	}
	_, err := t.event.get(ctx, "times/randomtimes", params)
	return err
}

// Copy copies the times of one participant to another.
func (t *TimesEndpoint) Copy(ctx context.Context, from, to Identifier, overwriteExisting bool) error {
	params := Params{
		from.Name + "From":  from.Value,
		to.Name + "To":      to.Value,
		"overwriteExisting": overwriteExisting,
	}
	_, err := t.event.get(ctx, "times/copy", params)
	return err
}

// Interpolate derives times in destID from the helper result.
func (t *TimesEndpoint) Interpolate(ctx context.Context, destID, helperID, contest, helpers int) error {
	params := Params{
		"destID":   destID,
		"helperID": helperID,
		"contest":  contest,
		"helpers":  helpers,
	}
	_, err := t.event.get(ctx, "times/interpolate", params)
	return err
}

// Get returns the times of one participant.
func (t *TimesEndpoint) Get(ctx context.Context, id Identifier, result int) ([]model.Time, error) {
	params := id.param(Params{"result": result})
	var times []model.Time
	if err := t.event.getJSON(ctx, "times/get", params, &times); err != nil {
		return nil, err
	}
	return times, nil
}

// Count returns the number of times matching the filters.
func (t *TimesEndpoint) Count(ctx context.Context, id Identifier, contest, result int, filter string) (int, error) {
	params := id.param(Params{
		"contest": contest,
		"result":  result,
		"filter":  filter,
	})
	body, err := t.event.get(ctx, "times/count", params)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(body)))
}

// Add pushes passings into the event and returns one status item per passing.
func (t *TimesEndpoint) Add(ctx context.Context, passings []model.Passing, returnFields []string, contestFilter int, ignoreBibToBibAssign bool) ([]model.TimesAddResponseItem, error) {
	params := Params{
		"contestFilter":        contestFilter,
		"ignoreBibToBibAssign": ignoreBibToBibAssign,
	}
	if len(returnFields) > 0 {
		params["returnFields"] = returnFields
	}
	var items []model.TimesAddResponseItem
	if err := t.event.postJSON(ctx, "times/add", params, passings, &items); err != nil {
		return nil, err
	}
	return items, nil
}
