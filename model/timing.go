package model

import "go-raceresult/pkg/rrtypes"

type TimingPoint struct {
	Name           string          `json:"Name"`
	Type           int             `json:"Type"`
	DDT            int             `json:"DDT"`
	IgnoreIfTimeIn int             `json:"IgnoreIfTimeIn"`
	IgnoreBefore   rrtypes.Decimal `json:"IgnoreBefore"`
	IgnoreAfter    rrtypes.Decimal `json:"IgnoreAfter"`
	SubtractT0     int             `json:"SubtractT0"`
	IgnorePS       int             `json:"IgnorePS"`
	Position       string          `json:"Position"`
	OrderPos       int             `json:"OrderPos"`
	Color          string          `json:"Color"`
}

type TimingPointRule struct {
	ID          int             `json:"ID"`
	DecoderID   string          `json:"DecoderID"`
	DecoderName string          `json:"DecoderName"`
	LoopID      int             `json:"LoopID"`
	ChannelID   int             `json:"ChannelID"`
	OrderID     int             `json:"OrderID"`
	MinTime     rrtypes.Decimal `json:"MinTime"`
	MaxTime     rrtypes.Decimal `json:"MaxTime"`
	OrderPos    int             `json:"OrderPos"`
	TimingPoint string          `json:"TimingPoint"`
}

// ChipFileEntry maps a transponder code to an identification such as a bib
// number. The chip file travels as semicolon-separated CRLF text, not JSON.
type ChipFileEntry struct {
	Transponder    string `json:"Transponder"`
	Identification string `json:"Identification"`
}

type RawData struct {
	ID          int             `json:"ID"`
	PID         int             `json:"PID"`
	TimingPoint string          `json:"TimingPoint"`
	Result      int             `json:"Result"`
	Time        rrtypes.Decimal `json:"Time"`
	Invalid     bool            `json:"Invalid"`
}

type RawDataReduced struct {
	TimingPoint string          `json:"TimingPoint"`
	PID         int             `json:"PID"`
	Time        rrtypes.Decimal `json:"Time"`
	Invalid     bool            `json:"Invalid"`
	OrderID     int             `json:"OrderID"`
	Result      int             `json:"Result"`
	IsMarker    bool            `json:"IsMarker"`
	RSSI        int             `json:"RSSI"`
}

// RawDataFilter narrows raw data queries; zero fields are omitted from the
// serialized filter.
type RawDataFilter struct {
	ID          []int            `json:"ID,omitempty"`
	MinID       int              `json:"MinID,omitempty"`
	MaxID       int              `json:"MaxID,omitempty"`
	TimingPoint []string         `json:"TimingPoint,omitempty"`
	MinTime     *rrtypes.Decimal `json:"MinTime,omitempty"`
	MaxTime     *rrtypes.Decimal `json:"MaxTime,omitempty"`
	Result      []int            `json:"Result,omitempty"`
	DeviceID    []string         `json:"DeviceID,omitempty"`
	DeviceName  []string         `json:"DeviceName,omitempty"`
	Transponder []string         `json:"Transponder,omitempty"`
	OrderID     []int            `json:"OrderID,omitempty"`
	Hits        []int            `json:"Hits,omitempty"`
	RSSI        []int            `json:"RSSI,omitempty"`
	LoopID      []int            `json:"LoopID,omitempty"`
	Channel     []int            `json:"Channel,omitempty"`
	Port        []int            `json:"Port,omitempty"`
	StatusFlags []int            `json:"StatusFlags,omitempty"`
	FileNo      []int            `json:"FileNo,omitempty"`
	PassingNo   []int            `json:"PassingNo,omitempty"`
	IsMarker    []bool           `json:"IsMarker,omitempty"`
}

type RawDataWithAdditionalFields struct {
	RawData
	Bib    int            `json:"Bib"`
	Fields map[string]any `json:"Fields"`
}

type RawDataDistinctValues struct {
	DecoderID      []string          `json:"DecoderID"`
	OrderID        []int             `json:"OrderID"`
	BatteryVoltage []rrtypes.Decimal `json:"BatteryVoltage"`
	Hits           []int             `json:"Hits"`
	RSSI           []int             `json:"RSSI"`
}

type Time struct {
	PID         int             `json:"PID"`
	Result      int             `json:"Result"`
	DecimalTime rrtypes.Decimal `json:"DecimalTime"`
	TimeText    string          `json:"TimeText"`
	InfoText    string          `json:"InfoText"`
}

type Passing struct {
	Transponder   string          `json:"Transponder"`
	Hits          int             `json:"Hits"`
	RSSI          int             `json:"RSSI"`
	Battery       rrtypes.Decimal `json:"Battery"`
	Temperature   int             `json:"Temperature"`
	WakeupCounter int             `json:"WUC"`
	LoopID        int             `json:"LoopID"`
	Channel       int             `json:"Channel"`
	InternalData  string          `json:"InternalData"`
	StatusFlags   int             `json:"StatusFlags"`
	DeviceID      string          `json:"DeviceID"`
	DeviceName    string          `json:"DeviceName"`
	OrderID       int             `json:"OrderID"`
	Port          int             `json:"Port"`
	IsMarker      bool            `json:"IsMarker"`
	FileNo        int             `json:"FileNo"`
	PassingNo     int             `json:"PassingNo"`
	Customer      int             `json:"Customer"`
}

type PassingToProcess struct {
	Bib         int             `json:"Bib"`
	TimingPoint string          `json:"TimingPoint"`
	ResultID    int             `json:"ResultID"`
	Time        rrtypes.Decimal `json:"Time"`
	InfoText    string          `json:"InfoText"`
	Passing     *Passing        `json:"Passing"`
}

type TimesAddResponseItem struct {
	Status      int             `json:"Status"`
	Time        rrtypes.Decimal `json:"Time"`
	ResultID    int             `json:"ResultID"`
	ResultName  string          `json:"ResultName"`
	RawDataID   int             `json:"RawDataID"`
	TimingPoint string          `json:"TimingPoint"`
	Fields      map[string]any  `json:"Fields"`
}
