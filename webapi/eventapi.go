package webapi

import "context"

// EventApi bundles the endpoint groups of a single event.
type EventApi struct {
	api     *Api
	eventID string

	data             *DataEndpoint
	participants     *ParticipantsEndpoint
	contests         *ContestsEndpoint
	ageGroups        *AgeGroupsEndpoint
	bibRanges        *BibRangesEndpoint
	customFields     *CustomFieldsEndpoint
	entryFees        *EntryFeesEndpoint
	vouchers         *VouchersEndpoint
	settings         *SettingsEndpoint
	timingPoints     *TimingPointsEndpoint
	timingPointRules *TimingPointRulesEndpoint
	times            *TimesEndpoint
	rawData          *RawDataEndpoint
	chipFile         *ChipFileEndpoint
	registrations    *RegistrationsEndpoint
	results          *ResultsEndpoint
	emailTemplates   *EmailTemplatesEndpoint
	lists            *ListsEndpoint
	exporters        *ExportersEndpoint
	history          *HistoryEndpoint
}

func newEventApi(api *Api, eventID string) *EventApi {
	e := &EventApi{api: api, eventID: eventID}
	e.data = &DataEndpoint{e}
	e.participants = &ParticipantsEndpoint{e}
	e.contests = &ContestsEndpoint{e}
	e.ageGroups = &AgeGroupsEndpoint{e}
	e.bibRanges = &BibRangesEndpoint{e}
	e.customFields = &CustomFieldsEndpoint{e}
	e.entryFees = &EntryFeesEndpoint{e}
	e.vouchers = &VouchersEndpoint{e}
	e.settings = &SettingsEndpoint{e}
	e.timingPoints = &TimingPointsEndpoint{e}
	e.timingPointRules = &TimingPointRulesEndpoint{e}
	e.times = &TimesEndpoint{e}
	e.rawData = &RawDataEndpoint{e}
	e.chipFile = &ChipFileEndpoint{e}
	e.registrations = &RegistrationsEndpoint{e}
	e.results = &ResultsEndpoint{e}
	e.emailTemplates = &EmailTemplatesEndpoint{e}
	e.lists = &ListsEndpoint{e}
	e.exporters = &ExportersEndpoint{e}
	e.history = &HistoryEndpoint{e}
	return e
}

func (e *EventApi) EventID() string { return e.eventID }

func (e *EventApi) Data() *DataEndpoint                         { return e.data }
func (e *EventApi) Participants() *ParticipantsEndpoint         { return e.participants }
func (e *EventApi) Contests() *ContestsEndpoint                 { return e.contests }
func (e *EventApi) AgeGroups() *AgeGroupsEndpoint               { return e.ageGroups }
func (e *EventApi) BibRanges() *BibRangesEndpoint               { return e.bibRanges }
func (e *EventApi) CustomFields() *CustomFieldsEndpoint         { return e.customFields }
func (e *EventApi) EntryFees() *EntryFeesEndpoint               { return e.entryFees }
func (e *EventApi) Vouchers() *VouchersEndpoint                 { return e.vouchers }
func (e *EventApi) Settings() *SettingsEndpoint                 { return e.settings }
func (e *EventApi) TimingPoints() *TimingPointsEndpoint         { return e.timingPoints }
func (e *EventApi) TimingPointRules() *TimingPointRulesEndpoint { return e.timingPointRules }
func (e *EventApi) Times() *TimesEndpoint                       { return e.times }
func (e *EventApi) RawData() *RawDataEndpoint                   { return e.rawData }
func (e *EventApi) ChipFile() *ChipFileEndpoint                 { return e.chipFile }
func (e *EventApi) Registrations() *RegistrationsEndpoint       { return e.registrations }
func (e *EventApi) Results() *ResultsEndpoint                   { return e.results }
func (e *EventApi) EmailTemplates() *EmailTemplatesEndpoint     { return e.emailTemplates }
func (e *EventApi) Lists() *ListsEndpoint                       { return e.lists }
func (e *EventApi) Exporters() *ExportersEndpoint               { return e.exporters }
func (e *EventApi) History() *HistoryEndpoint                   { return e.history }

func (e *EventApi) get(ctx context.Context, cmd string, params Params) ([]byte, error) {
	return e.api.Get(ctx, e.eventID, cmd, params)
}

func (e *EventApi) getJSON(ctx context.Context, cmd string, params Params, out any) error {
	return e.api.GetJSON(ctx, e.eventID, cmd, params, out)
}

func (e *EventApi) post(ctx context.Context, cmd string, params Params, body any, contentType string) ([]byte, error) {
	return e.api.Post(ctx, e.eventID, cmd, params, body, contentType)
}

func (e *EventApi) postJSON(ctx context.Context, cmd string, params Params, body, out any) error {
	return e.api.PostJSON(ctx, e.eventID, cmd, params, body, out)
}
