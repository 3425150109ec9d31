package webapi

import (
	"context"
	"strconv"

	"go-raceresult/model"
)

// Identifier addresses one or more participants by bib number, internal ID
// or filter expression.
type Identifier struct {
	Name  string
	Value any
}

func ByBib(bib int) Identifier {
	return Identifier{Name: "bib", Value: bib}
}

func ByPID(pid int) Identifier {
	return Identifier{Name: "pid", Value: pid}
}

func ByFilter(filter string) Identifier {
	return Identifier{Name: "filter", Value: filter}
}

func (i Identifier) param(params Params) Params {
	if params == nil {
		params = Params{}
	}
	params[i.Name] = i.Value
	return params
}

type ParticipantsEndpoint struct {
	event *EventApi
}

// GetFields returns the requested fields of one participant.
func (p *ParticipantsEndpoint) GetFields(ctx context.Context, id Identifier, fields []string) (map[string]any, error) {
	params := id.param(Params{"fields": fields})
	out := map[string]any{}
	if err := p.event.getJSON(ctx, "part/getfields", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFieldsWithChanges returns fields as if the given changes were applied.
func (p *ParticipantsEndpoint) GetFieldsWithChanges(ctx context.Context, id Identifier, fields []string, changes map[string]any) (map[string]any, error) {
	params := id.param(Params{"fields": fields})
	out := map[string]any{}
	if err := p.event.postJSON(ctx, "part/getfieldswithchanges", params, changes, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveExpression evaluates an expression server-side and stores the result
// in a field.
func (p *ParticipantsEndpoint) SaveExpression(ctx context.Context, id Identifier, field, expression string, noHistory bool) error {
	params := id.param(Params{
		"field":      field,
		"expression": expression,
		"noHistory":  noHistory,
	})
	_, err := p.event.get(ctx, "part/saveexpression", params)
	return err
}

// SaveValueArray stores multiple values across multiple participants.
func (p *ParticipantsEndpoint) SaveValueArray(ctx context.Context, values []model.SaveValueArrayItem, noHistory bool) error {
	return p.event.postJSON(ctx, "part/savevaluearray", Params{"noHistory": noHistory}, values, nil)
}

// SaveFields stores multiple field values of one participant.
func (p *ParticipantsEndpoint) SaveFields(ctx context.Context, id Identifier, values map[string]any, noHistory bool) error {
	return p.event.postJSON(ctx, "part/savefields", id.param(Params{"noHistory": noHistory}), values, nil)
}

// Save adds or updates one or more participants given as field maps.
func (p *ParticipantsEndpoint) Save(ctx context.Context, values []map[string]any, noHistory bool) error {
	return p.event.postJSON(ctx, "part/savefields", Params{"noHistory": noHistory}, values, nil)
}

// Delete removes participants matching the filters.
func (p *ParticipantsEndpoint) Delete(ctx context.Context, filter string, id *Identifier, contest int) error {
	params := Params{
		"filter":  filter,
		"contest": contest,
	}
	if id != nil {
		params = id.param(params)
	}
	_, err := p.event.get(ctx, "part/delete", params)
	return err
}

// New creates a participant and returns its ID and bib.
func (p *ParticipantsEndpoint) New(ctx context.Context, bib, contest int, firstFree bool) (model.ParticipantNewResponse, error) {
	params := Params{
		"bib":       bib,
		"contest":   contest,
		"firstfree": firstFree,
		"v2":        true,
	}
	var out model.ParticipantNewResponse
	err := p.event.getJSON(ctx, "part/new", params, &out)
	return out, err
}

// EntryFee returns the fee items charged to the given bibs.
func (p *ParticipantsEndpoint) EntryFee(ctx context.Context, bibs []int) ([]model.EntryFeeItem, error) {
	var items []model.EntryFeeItem
	if err := p.event.getJSON(ctx, "part/entryfee", Params{"bibs": bibs}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateBlanks creates blank participants for a bib range.
func (p *ParticipantsEndpoint) CreateBlanks(ctx context.Context, fromBib, toBib, contest int, skipExcluded bool) error {
	params := Params{
		"from":         fromBib,
		"to":           toBib,
		"contest":      contest,
		"skipExcluded": skipExcluded,
	}
	_, err := p.event.get(ctx, "part/createblanks", params)
	return err
}

// SwapBibs exchanges the bibs of two participants.
func (p *ParticipantsEndpoint) SwapBibs(ctx context.Context, bib1, bib2 int) error {
	_, err := p.event.get(ctx, "part/swapbibs", Params{"bib1": bib1, "bib2": bib2})
	return err
}

// ResetBibs reassigns bibs according to the sort expression.
func (p *ParticipantsEndpoint) ResetBibs(ctx context.Context, sort string, firstBib int, ranges bool, filter string, noHistory bool) error {
	params := Params{
		"sort":      sort,
		"firstBib":  firstBib,
		"ranges":    ranges,
		"filter":    filter,
		"noHistory": noHistory,
	}
	_, err := p.event.get(ctx, "part/resetbibs", params)
	return err
}

// DataManipulation applies field assignments to all matching participants.
func (p *ParticipantsEndpoint) DataManipulation(ctx context.Context, values map[string]string, filter string, noHistory bool) error {
	params := Params{
		"filter":    filter,
		"noHistory": noHistory,
	}
	return p.event.postJSON(ctx, "part/datamanipulation", params, values, nil)
}

// ClearBankInformation wipes bank data of the matching participants.
func (p *ParticipantsEndpoint) ClearBankInformation(ctx context.Context, id *Identifier, contest int, filter string) error {
	params := Params{
		"contest": contest,
		"filter":  filter,
	}
	if id != nil {
		params = id.param(params)
	}
	_, err := p.event.get(ctx, "part/clearbankinformation", params)
	return err
}

// FreeBib returns an unused bib number.
func (p *ParticipantsEndpoint) FreeBib(ctx context.Context, maxBibPlus1 bool, contest, preferred int) (int, error) {
	params := Params{
		"maxBibPlus1": maxBibPlus1,
		"contest":     contest,
		"preferred":   preferred,
	}
	body, err := p.event.get(ctx, "part/freebib", params)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(string(body))
}

// FrequentClubs returns club names matching the wildcard.
func (p *ParticipantsEndpoint) FrequentClubs(ctx context.Context, wildcard string, maxNumber int) ([]string, error) {
	params := Params{
		"wildcard":  wildcard,
		"maxNumber": maxNumber,
	}
	var clubs []string
	if err := p.event.getJSON(ctx, "part/frequentclubs", params, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// ImportFileOptions control a participant file import.
type ImportFileOptions struct {
	AddParticipants    bool
	UpdateParticipants bool
	ColHandling        int
	IdentityColumns    int
	Lang               string
}

// ImportFile imports participants from a CSV/XLS/XLSX file.
func (p *ParticipantsEndpoint) ImportFile(ctx context.Context, fileData []byte, opts ImportFileOptions) (model.ImportResult, error) {
	params := Params{
		"addParticipants":    opts.AddParticipants,
		"updateParticipants": opts.UpdateParticipants,
		"colHandling":        opts.ColHandling,
		"identityColumns":    opts.IdentityColumns,
		"lang":               opts.Lang,
	}
	var out model.ImportResult
	body, err := p.event.post(ctx, "part/import", params, fileData, "application/octet-stream")
	if err != nil {
		return out, err
	}
	err = decodeBody(body, &out)
	return out, err
}
