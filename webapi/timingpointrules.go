package webapi

import (
	"context"

	"go-raceresult/model"
)

type TimingPointRulesEndpoint struct {
	event *EventApi
}

// Get returns all timing point rules.
func (t *TimingPointRulesEndpoint) Get(ctx context.Context) ([]model.TimingPointRule, error) {
	var rules []model.TimingPointRule
	if err := t.event.getJSON(ctx, "timingpointrules/get", nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// GetOne returns a single timing point rule.
func (t *TimingPointRulesEndpoint) GetOne(ctx context.Context, id int) (model.TimingPointRule, error) {
	var rule model.TimingPointRule
	err := t.event.getJSON(ctx, "timingpointrules/get", Params{"id": id}, &rule)
	return rule, err
}

// Delete removes a timing point rule.
func (t *TimingPointRulesEndpoint) Delete(ctx context.Context, id int) error {
	_, err := t.event.get(ctx, "timingpointrules/delete", Params{"id": id})
	return err
}

// Save stores timing point rules and returns their IDs.
func (t *TimingPointRulesEndpoint) Save(ctx context.Context, items []model.TimingPointRule) ([]int, error) {
	var ids []int
	if err := t.event.postJSON(ctx, "timingpointrules/save", nil, items, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
