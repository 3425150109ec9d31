package webapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go-raceresult/model"
	"go-raceresult/pkg/rrtypes"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Credentials carries the supported login methods; set either APIKey or
// User plus Password. SignInAs, TOTP and RRUserToken are optional extras.
type Credentials struct {
	APIKey      string
	User        string
	Password    string
	SignInAs    string
	TOTP        string
	RRUserToken string
}

func (c Credentials) form() url.Values {
	data := url.Values{}
	if c.APIKey != "" {
		data.Set("apikey", c.APIKey)
	}
	if c.User != "" {
		data.Set("user", c.User)
		data.Set("pw", c.Password)
	}
	if c.SignInAs != "" {
		data.Set("signinas", c.SignInAs)
	}
	if c.TOTP != "" {
		data.Set("totp", c.TOTP)
	}
	if c.RRUserToken != "" {
		data.Set("rruser_token", c.RRUserToken)
	}
	return data
}

// Login obtains a session token. The credentials are retained so an expired
// session can be renewed transparently.
func (a *Api) Login(ctx context.Context, creds Credentials) error {
	data := creds.form()
	token, err := a.requestSession(ctx, data)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.sessionID = token
	a.loginData = data
	a.mu.Unlock()
	return nil
}

// requestSession performs the login round trip and returns the token without
// touching the Api state.
func (a *Api) requestSession(ctx context.Context, data url.Values) (string, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", a.cfg.UserAgent).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody(data.Encode()).
		Post(a.buildURL("", "public/login", nil))
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	body, err := a.handleResponse(ctx, resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// Logout invalidates the session token.
func (a *Api) Logout(ctx context.Context) error {
	if !a.IsLoggedIn() {
		return ErrNotLoggedIn
	}
	if _, err := a.Get(ctx, "", "public/logout", nil); err != nil {
		return err
	}
	a.mu.Lock()
	a.sessionID = noSession
	a.loginData = nil
	a.mu.Unlock()
	return nil
}

// EventList returns the events of the logged-in user, optionally narrowed by
// year and filter expression.
func (a *Api) EventList(ctx context.Context, year int, filter string) ([]model.EventListItem, error) {
	params := Params{
		"year":        year,
		"filter":      filter,
		"addsettings": "EventName,EventDate,EventDate2,EventLocation,EventCountry",
	}
	var items []model.EventListItem
	if err := a.GetJSON(ctx, "", "public/eventlist", params, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateEvent creates a new event and returns its EventApi.
func (a *Api) CreateEvent(ctx context.Context, name string, date rrtypes.DateTime, country, copyOf, templateID, mode, laps int) (*EventApi, error) {
	params := Params{
		"name":       name,
		"date":       date,
		"country":    country,
		"copyOf":     copyOf,
		"templateID": templateID,
		"mode":       mode,
		"laps":       laps,
	}
	body, err := a.Get(ctx, "", "public/createevent", params)
	if err != nil {
		return nil, err
	}
	return a.Event(strings.TrimSpace(string(body))), nil
}

// DeleteEvent permanently deletes an event.
func (a *Api) DeleteEvent(ctx context.Context, eventID string) error {
	_, err := a.Get(ctx, "", "public/deleteevent", Params{"eventID": eventID})
	return err
}

// UserInfo returns the account of the current session.
func (a *Api) UserInfo(ctx context.Context) (model.UserInfo, error) {
	var info model.UserInfo
	err := a.GetJSON(ctx, "", "public/userinfo", nil, &info)
	return info, err
}

// TokenFromSession exchanges the session for an auth token usable with other
// vendor services.
func (a *Api) TokenFromSession(ctx context.Context) (model.OAuthToken, error) {
	var token model.OAuthToken
	err := a.GetJSON(ctx, "", "public/tokenfromsession", nil, &token)
	return token, err
}

// UserRightsGet lists the users holding access rights on an event.
func (a *Api) UserRightsGet(ctx context.Context, eventID string) ([]model.UserRight, error) {
	var rights []model.UserRight
	if err := a.GetJSON(ctx, "", "userrights/get", Params{"eventID": eventID}, &rights); err != nil {
		return nil, err
	}
	return rights, nil
}

// UserRightsSave grants or updates a user's rights on an event.
func (a *Api) UserRightsSave(ctx context.Context, eventID, user, rights string) error {
	params := Params{
		"eventID": eventID,
		"user":    user,
		"rights":  rights,
	}
	_, err := a.Get(ctx, "", "userrights/save", params)
	return err
}

// UserRightsDelete removes a user's rights from an event.
func (a *Api) UserRightsDelete(ctx context.Context, eventID string, userID int) error {
	params := Params{
		"eventID": eventID,
		"userID":  userID,
	}
	_, err := a.Get(ctx, "", "userrights/delete", params)
	return err
}
