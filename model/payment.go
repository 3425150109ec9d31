package model

import (
	"time"

	"go-raceresult/pkg/rrtypes"
)

type VoucherType int

const (
	VoucherAmount VoucherType = iota
	VoucherPercent
	VoucherFirstReg
	VoucherPrevReg
)

// Payment methods.
const (
	PMNoPayment        = 0
	PMCCEUR            = 2
	PMCCCHF            = 3
	PMUebD             = 4
	PMBar              = 5
	PMSPF              = 6
	PMPPalEUR          = 7
	PMUebCH            = 8
	PMEinzCH           = 10
	PMUebSof           = 12
	PMPPalGBP          = 14
	PMPPalUSD          = 15
	PMSEPA             = 16
	PMCCGBP            = 17
	PMSEPAData         = 19
	PMOwnEPay          = 20
	PMOwnPPal          = 21
	PMOwnWireT         = 22
	PMOwnPaytrail      = 25
	PMOwnOnePay        = 26
	PMTelr             = 27
	PMOwnOnePayDom     = 28
	PMFatora           = 29
	PMTwint            = 30
	PMStripeCard       = 31
	PMOwnPaytrailV2    = 32
	PMTelrSale         = 33
	PMRedSys           = 34
	PMMollieBancontact = 35
	PMPayTabs          = 36
	PMAsiaPay          = 37
	PMMercadoPago      = 38
	PMCB               = 99
)

// Payment states.
const (
	PayStateUndefined = 0
	PayStatePending   = 1
	PayStateUnderpaid = 2
	PayStatePaid      = 3
	PayStateOverpaid  = 4
	PayStateNoPayout  = 5
)

type Voucher struct {
	ID         int              `json:"ID"`
	Code       string           `json:"Code"`
	Type       VoucherType      `json:"Type"`
	Amount     rrtypes.Decimal  `json:"Amount"`
	Tax        rrtypes.Decimal  `json:"Tax"`
	Contest    int              `json:"Contest"`
	Category   string           `json:"Category"`
	ValidUntil rrtypes.DateTime `json:"ValidUntil"`
	ValidFrom  rrtypes.DateTime `json:"ValidFrom"`
	Reusable   int              `json:"Reusable"`
	UseCounter int              `json:"UseCounter"`
	Remark     string           `json:"Remark"`
	OrderPos   float64          `json:"OrderPos"`
}

// IsValid reports whether the voucher is currently usable, checking the
// validity window and the use counter.
func (v *Voucher) IsValid() bool {
	now := time.Now().UTC()
	if !v.ValidFrom.IsZero() && now.Before(v.ValidFrom.Time()) {
		return false
	}
	if !v.ValidUntil.IsZero() && now.After(v.ValidUntil.Time()) {
		return false
	}
	if v.Reusable > 0 && v.UseCounter >= v.Reusable {
		return false
	}
	return true
}

type MethodOption struct {
	ID            int             `json:"ID"`
	NameShort     string          `json:"NameShort"`
	Name          string          `json:"Name"`
	EntryFee      rrtypes.Decimal `json:"EntryFee"`
	PaymentFee    rrtypes.Decimal `json:"PaymentFee"`
	UserFee       rrtypes.Decimal `json:"UserFee"`
	Kickback      rrtypes.Decimal `json:"KB"`
	Currency      string          `json:"Currency"`
	ExchangeRate  float64         `json:"ExchangeRate"`
	SEPANotBefore string          `json:"SEPANotBefore"`
	NoTestMode    bool            `json:"NoTestMode"`
	Token         string          `json:"Token"`
}

type Method struct {
	ID                     int             `json:"ID"`
	NameShort              string          `json:"NameShort"`
	Name                   string          `json:"Name"`
	Currency               string          `json:"Currency"`
	TransactionFee         rrtypes.Decimal `json:"TransactionFee"`
	Disagio                rrtypes.Decimal `json:"Disagio"`
	RegFee                 rrtypes.Decimal `json:"RegFee"`
	RefundFee              rrtypes.Decimal `json:"RefundFee"`
	TransactionCosts       rrtypes.Decimal `json:"TransactionCosts"`
	DisagioCosts           rrtypes.Decimal `json:"DisagioCosts"`
	TransferDelay          int             `json:"TransferDelay"`
	TransferDelayDecember  int             `json:"TransferDelayDecember"`
	Activated              bool            `json:"Activated"`
	NoPayout               bool            `json:"NoPayout"`
	BankAccountID          int             `json:"BankAccountID"`
	CaptureAmountAccountID int             `json:"CaptureAmountAccountID"`
	NoPayoutReceival       bool            `json:"NoPayoutReceival"`
	NoTestMode             bool            `json:"NoTestMode"`
	Rounding               rrtypes.Decimal `json:"Rounding"`
	DontShowFee            bool            `json:"DontShowFee"`
}

type Payment struct {
	ID            int              `json:"ID"`
	CustNo        int              `json:"CustNo"`
	Event         int              `json:"Event"`
	Method        int              `json:"Method"`
	Currency      string           `json:"Currency"`
	AmountNew     rrtypes.Decimal  `json:"AmountNew"`
	Fees          rrtypes.Decimal  `json:"Fees"`
	UserFees      rrtypes.Decimal  `json:"UserFees"`
	Kickback      rrtypes.Decimal  `json:"Kickback"`
	ExchangeRate  float64          `json:"ExchangeRate"`
	Created       rrtypes.DateTime `json:"Created"`
	PayState      int              `json:"PayState"`
	EventCurrency string           `json:"EventCurrency"`
	Reference     string           `json:"Reference"`
	Email         string           `json:"Email"`
	BillNo        int              `json:"BillNo"`
	RetryOf       int              `json:"RetryOf"`
	Lang          string           `json:"Lang"`
	IgnorePayment bool             `json:"IgnorePayment"`
	IgnoreReason  string           `json:"IgnoreReason"`
	RequestID     int              `json:"RequestID"`
	KickbackInvID int              `json:"KickbackInvID"`
}
