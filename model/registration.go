package model

import (
	"time"

	"go-raceresult/pkg/rrtypes"
)

type Style struct {
	Attribute string `json:"Attribute"`
	Value     string `json:"Value"`
}

type Value struct {
	Value       any              `json:"Value"`
	Label       string           `json:"Label"`
	Enabled     bool             `json:"Enabled"`
	EnabledFrom rrtypes.DateTime `json:"EnabledFrom"`
	EnabledTo   rrtypes.DateTime `json:"EnabledTo"`
	MaxCapacity int              `json:"MaxCapacity"`
	ShowIf      string           `json:"ShowIf"`
}

type ValidationRule struct {
	Rule string `json:"Rule"`
	Msg  string `json:"Msg"`
}

type FormField struct {
	Name              string   `json:"Name"`
	ControlType       string   `json:"ControlType"`
	Mandatory         int      `json:"Mandatory"`
	DefaultValue      string   `json:"DefaultValue"`
	DefaultValueType  int      `json:"DefaultValueType"`
	Placeholder       string   `json:"Placeholder"`
	Unique            string   `json:"Unique"`
	Special           string   `json:"Special"`
	SpecialDetails    string   `json:"SpecialDetails"`
	ForceUpdate       bool     `json:"ForceUpdate"`
	Values            []Value  `json:"Values"`
	AdditionalOptions []string `json:"AdditionalOptions"`
	Flags             []string `json:"Flags"`
}

type Element struct {
	Type            string           `json:"Type"`
	Label           string           `json:"Label"`
	Enabled         bool             `json:"Enabled"`
	EnabledFrom     rrtypes.DateTime `json:"EnabledFrom"`
	EnabledTo       rrtypes.DateTime `json:"EnabledTo"`
	Field           *FormField       `json:"Field"`
	ShowIf          string           `json:"ShowIf"`
	ShowIfMode      int              `json:"ShowIfMode"`
	ShowIfCurr      string           `json:"ShowIfCurr"`
	ShowIfCurrMode  int              `json:"ShowIfCurrMode"`
	ShowIfInitial   bool             `json:"ShowIfInitial"`
	Styles          []Style          `json:"Styles"`
	ClassName       string           `json:"ClassName"`
	ID              int              `json:"ID"`
	Common          int              `json:"Common"`
	ValidationRules []ValidationRule `json:"ValidationRules"`
	Children        []Element        `json:"Children"`
}

type Step struct {
	ID          int              `json:"ID"`
	Title       string           `json:"Title"`
	Enabled     bool             `json:"Enabled"`
	EnabledFrom rrtypes.DateTime `json:"EnabledFrom"`
	EnabledTo   rrtypes.DateTime `json:"EnabledTo"`
	Elements    []Element        `json:"Elements"`
	ButtonText  string           `json:"ButtonText"`
}

type AdditionalValue struct {
	FieldName     string `json:"FieldName"`
	Source        string `json:"Source"`
	Value         string `json:"Value"`
	Filter        string `json:"Filter"`
	FilterInitial string `json:"FilterInitial"`
}

type Confirmation struct {
	Title      string `json:"Title"`
	Expression string `json:"Expression"`
}

type AfterSave struct {
	Type        string   `json:"Type"`
	Value       string   `json:"Value"`
	Destination string   `json:"Destination"`
	Filter      string   `json:"Filter"`
	Flags       []string `json:"Flags"`
}

type RegPaymentMethod struct {
	ID          int              `json:"ID"`
	Label       string           `json:"Label"`
	Enabled     bool             `json:"Enabled"`
	EnabledFrom rrtypes.DateTime `json:"EnabledFrom"`
	EnabledTo   rrtypes.DateTime `json:"EnabledTo"`
	Filter      string           `json:"Filter"`
}

type ErrorMessages struct {
	BeforRegStart string `json:"BeforRegStart"`
	AfterRegEnd   string `json:"AfterRegEnd"`
}

type Registration struct {
	Name                    string             `json:"Name"`
	Key                     string             `json:"Key"`
	ChangeKeySalt           string             `json:"ChangeKeySalt"`
	Title                   string             `json:"Title"`
	Enabled                 bool               `json:"Enabled"`
	EnabledFrom             rrtypes.DateTime   `json:"EnabledFrom"`
	EnabledTo               rrtypes.DateTime   `json:"EnabledTo"`
	TestModeKey             string             `json:"TestModeKey"`
	Type                    string             `json:"Type"`
	GroupMin                int                `json:"GroupMin"`
	GroupMax                int                `json:"GroupMax"`
	GroupDefault            int                `json:"GroupDefault"`
	GroupInc                int                `json:"GroupInc"`
	Contest                 int                `json:"Contest"`
	Limit                   int                `json:"Limit"`
	ChangeIdentityField     string             `json:"ChangeIdentityField"`
	ChangeIdentityFilter    string             `json:"ChangeIdentityFilter"`
	Steps                   []Step             `json:"Steps"`
	AdditionalValues        []AdditionalValue  `json:"AdditionalValues"`
	CheckSex                bool               `json:"CheckSex"`
	CheckDuplicate          bool               `json:"CheckDuplicate"`
	DontProposeGender       bool               `json:"DontProposeGender"`
	OnlinePayment           bool               `json:"OnlinePayment"`
	OnlinePaymentButtonText string             `json:"OnlinePaymentButtonText"`
	PaymentMethods          []RegPaymentMethod `json:"PaymentMethods"`
	OnlineRefund            bool               `json:"OnlineRefund"`
	RefundMethods           []RegPaymentMethod `json:"RefundMethods"`
	Confirmation            Confirmation       `json:"Confirmation"`
	AfterSave               []AfterSave        `json:"AfterSave"`
	CSS                     string             `json:"CSS"`
	ErrorMessages           ErrorMessages      `json:"ErrorMessages"`
}

// IsActive reports whether the registration form currently accepts entries.
func (r *Registration) IsActive() bool {
	if !r.Enabled {
		return false
	}
	now := time.Now().UTC()
	if !r.EnabledFrom.IsZero() && now.Before(r.EnabledFrom.Time()) {
		return false
	}
	if !r.EnabledTo.IsZero() && now.After(r.EnabledTo.Time()) {
		return false
	}
	return true
}
