// Package model mirrors the RaceResult API resource schemas. Field names
// follow the vendor's wire names; rrtypes scalars handle the vendor's date,
// datetime and decimal formats at the field level.
package model

import (
	"strings"

	"go-raceresult/pkg/rrtypes"
)

type Participant struct {
	ID                int              `json:"ID"`
	Bib               int              `json:"Bib"`
	Transponder1      string           `json:"Transponder1"`
	Transponder2      string           `json:"Transponder2"`
	RegNo             string           `json:"RegNo"`
	Title             string           `json:"Title"`
	Lastname          string           `json:"Lastname"`
	Firstname         string           `json:"Firstname"`
	Sex               string           `json:"Sex"`
	DateOfBirth       rrtypes.Date     `json:"DateOfBirth"`
	Street            string           `json:"Street"`
	ZIP               string           `json:"ZIP"`
	City              string           `json:"City"`
	State2            string           `json:"State2"`
	Country           string           `json:"Country"`
	Nation            string           `json:"Nation"`
	AgeGroup1         int              `json:"AgeGroup1"`
	AgeGroup2         int              `json:"AgeGroup2"`
	AgeGroup3         int              `json:"AgeGroup3"`
	Club              string           `json:"Club"`
	Contest           int              `json:"Contest"`
	Status            int              `json:"Status"`
	Booleans          int              `json:"Booleans"`
	PaidEntryFee      rrtypes.Decimal  `json:"PaidEntryFee"`
	Phone             string           `json:"Phone"`
	CellPhone         string           `json:"CellPhone"`
	SendSMS           int              `json:"SendSMS"`
	Email             string           `json:"Email"`
	AccountNo         string           `json:"AccountNo"`
	BranchNo          string           `json:"BranchNo"`
	Bankname          string           `json:"Bankname"`
	AccountOwner      string           `json:"AccountOwner"`
	IBAN              string           `json:"IBAN"`
	BIC               string           `json:"BIC"`
	SEPAMandate       string           `json:"SEPAMandate"`
	Comment           string           `json:"Comment"`
	Created           rrtypes.DateTime `json:"Created"`
	Modified          rrtypes.DateTime `json:"Modified"`
	Uploaded          rrtypes.DateTime `json:"Uploaded"`
	CreatedBy         string           `json:"CreatedBy"`
	ForeignID         int              `json:"ForeignID"`
	RecordPayGUID     string           `json:"RecordPayGUID"`
	ActivationEventID string           `json:"ActivationEventID"`
	OPJSON            string           `json:"OPJSON"`
	OPID              int              `json:"OPID"`
	License           string           `json:"License"`
	ShowUnderscores   bool             `json:"ShowUnderscores"`
	GroupRegPos       int              `json:"GroupRegPos"`
	GroupID           int              `json:"GroupID"`
	Password          string           `json:"Password"`
	Voucher           string           `json:"Voucher"`
	Language          string           `json:"Language"`
}

// FullName joins the non-empty name parts.
func (p *Participant) FullName() string {
	parts := make([]string, 0, 2)
	if p.Firstname != "" {
		parts = append(parts, p.Firstname)
	}
	if p.Lastname != "" {
		parts = append(parts, p.Lastname)
	}
	return strings.Join(parts, " ")
}

// FullAddress renders street, zip/city and country as one comma-separated
// line, skipping empty parts.
func (p *Participant) FullAddress() string {
	parts := make([]string, 0, 3)
	if p.Street != "" {
		parts = append(parts, p.Street)
	}
	if p.ZIP != "" || p.City != "" {
		parts = append(parts, strings.TrimSpace(p.ZIP+" "+p.City))
	}
	if p.Country != "" {
		parts = append(parts, p.Country)
	}
	return strings.Join(parts, ", ")
}

type ParticipantNewResponse struct {
	ID  int `json:"ID"`
	Bib int `json:"Bib"`
}

type ImportResult struct {
	Added   int   `json:"Added"`
	Updated int   `json:"Updated"`
	PIDs    []int `json:"PIDs"`
}

type SaveValueArrayItem struct {
	Bib       int    `json:"Bib"`
	PID       int    `json:"PID"`
	FieldName string `json:"FieldName"`
	Value     any    `json:"Value"`
}
