package webapi

import (
	"context"
	"strconv"
	"strings"

	"go-raceresult/model"
)

type VouchersEndpoint struct {
	event *EventApi
}

// Get returns all vouchers, or the ones matching a code.
func (v *VouchersEndpoint) Get(ctx context.Context, code string) ([]model.Voucher, error) {
	var params Params
	if code != "" {
		params = Params{"code": code}
	}
	var vouchers []model.Voucher
	if err := v.event.getJSON(ctx, "vouchers/get", params, &vouchers); err != nil {
		return nil, err
	}
	return vouchers, nil
}

// Delete removes vouchers; the IDs travel semicolon-joined in the body.
func (v *VouchersEndpoint) Delete(ctx context.Context, ids []int) error {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	_, err := v.event.post(ctx, "vouchers/delete", nil, strings.Join(parts, ";"), "text/plain")
	return err
}

// Save stores vouchers and returns their IDs.
func (v *VouchersEndpoint) Save(ctx context.Context, vouchers []model.Voucher) ([]int, error) {
	var ids []int
	if err := v.event.postJSON(ctx, "vouchers/save", nil, vouchers, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
