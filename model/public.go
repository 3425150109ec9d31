package model

import (
	"strings"

	"go-raceresult/pkg/rrtypes"
)

type UserInfo struct {
	CustNo   int    `json:"CustNo"`
	UserName string `json:"UserName"`
	UserPic  string `json:"UserPic"`
}

type UserRight struct {
	UserID   int                 `json:"UserID"`
	UserName string              `json:"UserName"`
	UserPic  string              `json:"UserPic"`
	Rights   map[string][]string `json:"Rights"`
}

// HasRight reports whether the user holds the given right, e.g. "data.read".
// A "*" entry grants everything in its scope.
func (u *UserRight) HasRight(right string) bool {
	if len(u.Rights) == 0 {
		return false
	}
	if _, ok := u.Rights["*"]; ok {
		return true
	}
	scope, rest, hasRest := strings.Cut(right, ".")
	permissions, ok := u.Rights[scope]
	if !ok {
		return false
	}
	if !hasRest {
		return true
	}
	for _, p := range permissions {
		if p == "*" || p == rest {
			return true
		}
	}
	return false
}

type OAuthToken struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	Expiry       string `json:"expiry"`
}

// EventListItem is one row of the public event list, including the settings
// requested alongside it.
type EventListItem struct {
	ID            string           `json:"ID"`
	UserID        int              `json:"UserID"`
	UserName      string           `json:"UserName"`
	CheckedOut    bool             `json:"CheckedOut"`
	Participants  int              `json:"Participants"`
	NotActivated  int              `json:"NotActivated"`
	EventName     string           `json:"EventName"`
	EventDate     rrtypes.DateTime `json:"EventDate"`
	EventDate2    rrtypes.DateTime `json:"EventDate2"`
	EventLocation string           `json:"EventLocation"`
	EventCountry  int              `json:"EventCountry"`
}
