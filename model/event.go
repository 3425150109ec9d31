package model

import "go-raceresult/pkg/rrtypes"

type CustomFieldType int

const (
	CustomFieldText CustomFieldType = iota
	CustomFieldDropDown
	CustomFieldYesNo
	CustomFieldInteger
	CustomFieldDecimal
	CustomFieldDate
	CustomFieldCurrency
	CustomFieldCountry
	CustomFieldEmail
	CustomFieldCellPhone
	CustomFieldTransponder
)

// AgeGroup can be based on either birth year or birth date, determined by
// DateStart/DateEnd: full-year boundaries mean "by birth year".
type AgeGroup struct {
	ID        int          `json:"ID"`
	Name      string       `json:"Name"`
	NameShort string       `json:"NameShort"`
	DateStart rrtypes.Date `json:"DateStart"`
	DateEnd   rrtypes.Date `json:"DateEnd"`
	AgeFrom   int          `json:"AgeFrom"`
	AgeTo     int          `json:"AgeTo"`
	Contest   int          `json:"Contest"`
	AGSet     int          `json:"AGSet"`
	OrderPos  int          `json:"OrderPos"`
	Sex       string       `json:"Sex"`
}

type BibRange struct {
	ID              int             `json:"ID"`
	BibStart        int             `json:"BibStart"`
	BibEnd          int             `json:"BibEnd"`
	Contest         int             `json:"Contest"`
	TimeDifference  rrtypes.Decimal `json:"TimeDifference"`
	FinishTimeLimit rrtypes.Decimal `json:"FinishTimeLimit"`
	Comment         string          `json:"Comment"`
	Filter          string          `json:"Filter"`
}

type Contest struct {
	ID               int             `json:"ID"`
	Name             string          `json:"Name"`
	NameShort        string          `json:"NameShort"`
	AgeStart         rrtypes.Date    `json:"AgeStart"`
	AgeEnd           rrtypes.Date    `json:"AgeEnd"`
	Sex              string          `json:"Sex"`
	Day              int             `json:"Day"`
	StartTime        rrtypes.Decimal `json:"StartTime"`
	Length           rrtypes.Decimal `json:"Length"`
	LengthUnit       string          `json:"LengthUnit"`
	TimeFormat       string          `json:"TimeFormat"`
	TimeRounding     int             `json:"TimeRounding"`
	StartTransponder int             `json:"StartTransponder"`
	StartResult      int             `json:"StartResult"`
	TimeDifference   rrtypes.Decimal `json:"TimeDifference"`
	FinishResult     int             `json:"FinishResult"`
	FinishTimeLimit  rrtypes.Decimal `json:"FinishTimeLimit"`
	Laps             int             `json:"Laps"`
	MinResultID      int             `json:"MinResultID"`
	MinLapTime       rrtypes.Decimal `json:"MinLapTime"`
	TimingMode       int             `json:"TimingMode"`
	TimingModeFilter string          `json:"TimingModeFilter"`
	Attributes       string          `json:"Attributes"`
	OrderPos         float64         `json:"OrderPos"`
	Sort1            string          `json:"Sort1"`
	Sort2            string          `json:"Sort2"`
	Sort3            string          `json:"Sort3"`
	Sort4            string          `json:"Sort4"`
	SortDesc1        bool            `json:"SortDesc1"`
	SortDesc2        bool            `json:"SortDesc2"`
	SortDesc3        bool            `json:"SortDesc3"`
	SortDesc4        bool            `json:"SortDesc4"`
	Inactive         bool            `json:"Inactive"`
}

type CustomField struct {
	ID          int             `json:"ID"`
	Name        string          `json:"Name"`
	AltName     string          `json:"AltName"`
	Group       string          `json:"Group"`
	Type        CustomFieldType `json:"Type"`
	Enabled     bool            `json:"Enabled"`
	Mandatory   bool            `json:"Mandatory"`
	Config      string          `json:"Config"`
	Default     string          `json:"Default"`
	Placeholder string          `json:"Placeholder"`
	Label       string          `json:"Label"`
	OrderPos    int             `json:"OrderPos"`
	MinLen      int             `json:"MinLen"`
	MaxLen      int             `json:"MaxLen"`
}

type EntryFee struct {
	ID              int             `json:"ID"`
	Name            string          `json:"Name"`
	Contest         int             `json:"Contest"`
	DateStart       rrtypes.Date    `json:"DateStart"`
	DateEnd         rrtypes.Date    `json:"DateEnd"`
	RegStart        rrtypes.Date    `json:"RegStart"`
	RegEnd          rrtypes.Date    `json:"RegEnd"`
	Field           string          `json:"Field"`
	Operator        string          `json:"Operator"`
	Value           string          `json:"Value"`
	Fee             rrtypes.Decimal `json:"Fee"`
	ShowAsBasicFee  bool            `json:"ShowAsBasicFee"`
	IsMultiplicator bool            `json:"IsMultiplicator"`
	Multiplication  string          `json:"Multiplication"`
	Category        string          `json:"Category"`
	Tax             rrtypes.Decimal `json:"Tax"`
	OrderPos        int             `json:"OrderPos"`
}

type EntryFeeItem struct {
	ID             int             `json:"ID"`
	Name           string          `json:"Name"`
	Fee            rrtypes.Decimal `json:"Fee"`
	Field          string          `json:"Field"`
	Tax            rrtypes.Decimal `json:"Tax"`
	Multiplication rrtypes.Decimal `json:"Multiplication"`
}

type Ranking struct {
	ID          int      `json:"ID"`
	Name        string   `json:"Name"`
	Group       []string `json:"Group"`
	Sort        []string `json:"Sort"`
	SortDesc    []bool   `json:"SortDesc"`
	UseTies     bool     `json:"UseTies"`
	ContestSort bool     `json:"ContestSort"`
	Filter      string   `json:"Filter"`
}

type Result struct {
	ID           int    `json:"ID"`
	Name         string `json:"Name"`
	Formula      string `json:"Formula"`
	TimeFormat   string `json:"TimeFormat"`
	Location     string `json:"Location"`
	TimeRounding int    `json:"TimeRounding"`
}

// Split types.
const (
	SplitTypeSplit    = 0
	SplitTypeInternal = 2
	SplitTypeLeg      = 9
)

// Split time modes.
const (
	SplitTimeModeRefSplit = 1
	SplitTimeModeRaceTime = 0
	SplitTimeModeTOD      = -1
	SplitTimeModeDelta    = -2
	SplitTimeModeMinKM    = -3
	SplitTimeModeMinMile  = -4
	SplitTimeModeMin100M  = -5
	SplitTimeModeKMH      = -6
	SplitTimeModeMPH      = -7
	SplitTimeModeMPS      = -8
)

type Split struct {
	ID           int             `json:"ID"`
	Contest      int             `json:"Contest"`
	Name         string          `json:"Name"`
	TimingPoint  string          `json:"TimingPoint"`
	Backup       string          `json:"Backup"`
	BackupOffset rrtypes.Decimal `json:"BackupOffset"`
	TypeOfSport  int             `json:"TypeOfSport"`
	Distance     rrtypes.Decimal `json:"Distance"`
	DistanceUnit string          `json:"DistanceUnit"`
	DistanceFrom int             `json:"DistanceFrom"`
	TimeMin      rrtypes.Decimal `json:"TimeMin"`
	TimeMax      rrtypes.Decimal `json:"TimeMax"`
	Color        string          `json:"Color"`
	OrderPos     int             `json:"OrderPos"`
	SplitType    int             `json:"SplitType"`
	SectorFrom   int             `json:"SectorFrom"`
	SectorTo     int             `json:"SectorTo"`
	SpeedOrPace  string          `json:"SpeedOrPace"`
	TimeMode     int             `json:"TimeMode"`
	Label        string          `json:"Label"`
	SectorFrom2  int             `json:"SectorFrom2"`
	SectorTo2    int             `json:"SectorTo2"`
}

type UserDefinedField struct {
	Name       string `json:"Name"`
	Expression string `json:"Expression"`
	Note       string `json:"Note"`
	Group      string `json:"Group"`
}
