package webapi

import (
	"context"
	"strconv"
	"strings"

	"go-raceresult/model"
)

type ContestsEndpoint struct {
	event *EventApi
}

// PDF returns a PDF document listing all contests.
func (c *ContestsEndpoint) PDF(ctx context.Context) ([]byte, error) {
	return c.event.get(ctx, "contests/pdf", nil)
}

// Get returns all contests.
func (c *ContestsEndpoint) Get(ctx context.Context) ([]model.Contest, error) {
	var contests []model.Contest
	if err := c.event.getJSON(ctx, "contests/get", nil, &contests); err != nil {
		return nil, err
	}
	return contests, nil
}

// GetOne returns a single contest.
func (c *ContestsEndpoint) GetOne(ctx context.Context, id int) (model.Contest, error) {
	var contest model.Contest
	err := c.event.getJSON(ctx, "contests/get", Params{"id": id}, &contest)
	return contest, err
}

// Delete removes a contest.
func (c *ContestsEndpoint) Delete(ctx context.Context, id int) error {
	_, err := c.event.get(ctx, "contests/delete", Params{"id": id})
	return err
}

// Save stores a contest and returns its ID; oldID carries the previous ID on
// updates.
func (c *ContestsEndpoint) Save(ctx context.Context, contest model.Contest, oldID int) (int, error) {
	body, err := c.event.post(ctx, "contests/save", Params{"oldID": oldID}, contest, "application/json")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(body)))
}
