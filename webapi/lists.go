package webapi

import (
	"context"
	"strconv"
	"strings"

	"go-raceresult/pkg/rrtypes"
)

// ShowAt controls on which pages a list element is printed.
type ShowAt int

const (
	ShowNever     ShowAt = 0
	ShowFirstPage ShowAt = 1
	ShowEveryPage ShowAt = 2
	ShowLastPage  ShowAt = 3
)

// PageBreak controls the page break behavior of a list order level.
type PageBreak int

const (
	NoPageBreak  PageBreak = 0
	NewPage      PageBreak = 1
	KeepTogether PageBreak = 2
	NewColumn    PageBreak = 3
	Repeat       PageBreak = 4
)

// ListOrder is one sort/group level of a list.
type ListOrder struct {
	Expression         string    `json:"Exp"`
	Descending         bool      `json:"D"`
	Grouping           int       `json:"Grouping"`
	GroupFilterDefault int       `json:"GroupFilterDefault"`
	GroupFilterLabel   string    `json:"GroupFilterLabel"`
	PageBreak          PageBreak `json:"P"`
	FontName           string    `json:"F"`
	FontSize           int       `json:"S"`
	FontBold           bool      `json:"B"`
	FontItalic         bool      `json:"I"`
	FontUnderlined     bool      `json:"U"`
	Color              string    `json:"C"`
	BackgroundColor    string    `json:"BC"`
	Spacing            int       `json:"SP"`
}

// ListFilter is one filter condition of a list.
type ListFilter struct {
	Or          bool   `json:"Or"`
	Expression1 string `json:"Exp1"`
	Operator    string `json:"Op"`
	Expression2 string `json:"Exp2"`
}

// ListField is one column of a list.
type ListField struct {
	Expression     string          `json:"Exp"`
	Label          string          `json:"La"`
	Label2         string          `json:"La2"`
	Alignment      int             `json:"A"`
	FontBold       bool            `json:"B"`
	FontItalic     bool            `json:"I"`
	FontUnderlined bool            `json:"U"`
	Line           int             `json:"Li"`
	Color          string          `json:"C"`
	Link           string          `json:"Link"`
	ColSpan        int             `json:"ColSpan"`
	ColOffset      int             `json:"CO"`
	Position       rrtypes.Decimal `json:"P"`
	DynamicFormat  string          `json:"DF"`
	PreviewOnly    bool            `json:"PO"`
	ResponsiveHide int             `json:"RH"`
}

// SelectorResult maps a selectable result to the result IDs it shows.
type SelectorResult struct {
	ResultID  int    `json:"ResultID"`
	ResultID2 int    `json:"ResultID2"`
	ShowAs    string `json:"ShowAs"`
}

// List is a list definition with its layout settings, orders, filters and
// fields.
type List struct {
	Name                           string           `json:"ListName"`
	BottomPicture                  string           `json:"BottomPicture"`
	BottomPictureShow              ShowAt           `json:"BottomPictureShow"`
	ColumnHeadsFontName            string           `json:"ColumnHeadsFontName"`
	ColumnHeadsFontSize            int              `json:"ColumnHeadsFontSize"`
	ColumnHeadsFontBold            bool             `json:"ColumnHeadsFontBold"`
	ColumnHeadsFontItalic          bool             `json:"ColumnHeadsFontItalic"`
	ColumnHeadsFontUnderlined      bool             `json:"ColumnHeadsFontUnderlined"`
	ColumnHeadsColor               string           `json:"ColumnHeadsColor"`
	ColumnHeadsShow                ShowAt           `json:"ColumnHeadsShow"`
	Columns                        int              `json:"Columns"`
	ColumnSpacing                  rrtypes.Decimal  `json:"ColumnSpacing"`
	CoverSheet                     string           `json:"CoverSheet"`
	BackSheet                      string           `json:"BackSheet"`
	Design                         string           `json:"Design"`
	DesignShow                     ShowAt           `json:"DesignShow"`
	EveryOtherLineGray             bool             `json:"EveryOtherLineGray"`
	FontName                       string           `json:"FontName"`
	FontSize                       int              `json:"FontSize"`
	FooterFontName                 string           `json:"FooterFontName"`
	FooterFontSize                 int              `json:"FooterFontSize"`
	FooterFontBold                 bool             `json:"FooterFontBold"`
	FooterFontItalic               bool             `json:"FooterFontItalic"`
	FooterFontUnderlined           bool             `json:"FooterFontUnderlined"`
	FooterColor                    string           `json:"FooterColor"`
	GrayLine                       bool             `json:"GrayLine"`
	HeadLine1                      string           `json:"HeadLine1"`
	HeadLine1FontName              string           `json:"HeadLine1FontName"`
	HeadLine1FontSize              int              `json:"HeadLine1FontSize"`
	HeadLine1FontBold              bool             `json:"HeadLine1FontBold"`
	HeadLine1FontItalic            bool             `json:"HeadLine1FontItalic"`
	HeadLine1FontUnderlined        bool             `json:"HeadLine1FontUnderlined"`
	HeadLine1Color                 string           `json:"HeadLine1Color"`
	HeadLine1Show                  ShowAt           `json:"HeadLine1Show"`
	HeadLine2                      string           `json:"HeadLine2"`
	HeadLine2FontName              string           `json:"HeadLine2FontName"`
	HeadLine2FontSize              int              `json:"HeadLine2FontSize"`
	HeadLine2FontBold              bool             `json:"HeadLine2FontBold"`
	HeadLine2FontItalic            bool             `json:"HeadLine2FontItalic"`
	HeadLine2FontUnderlined        bool             `json:"HeadLine2FontUnderlined"`
	HeadLine2Color                 string           `json:"HeadLine2Color"`
	HeadLine2Show                  ShowAt           `json:"HeadLine2Show"`
	HeightBottomPicture            rrtypes.Decimal  `json:"HeightBottomPicture"`
	LineColor                      string           `json:"LineColor"`
	LineBackColor                  string           `json:"LineBackColor"`
	LineDynamicFormat              string           `json:"LineDynamicFormat"`
	LineSpacing                    rrtypes.Decimal  `json:"LineSpacing"`
	MaxRecords                     int              `json:"MaxRecords"`
	MultiplierField                string           `json:"MultiplierField"`
	PageFormat                     int              `json:"PageFormat"`
	PageMarginBottom               rrtypes.Decimal  `json:"PageMarginBottom"`
	PageMarginLeft                 rrtypes.Decimal  `json:"PageMarginLeft"`
	PageMarginRight                rrtypes.Decimal  `json:"PageMarginRight"`
	PageMarginTop                  rrtypes.Decimal  `json:"PageMarginTop"`
	PageSize                       int              `json:"PageSize"`
	PageHeight                     rrtypes.Decimal  `json:"PageHeight"`
	PageWidth                      rrtypes.Decimal  `json:"PageWidth"`
	SepLine                        bool             `json:"SepLine"`
	TopRightPicture                string           `json:"TopRightPicture"`
	TopRightPictureShow            ShowAt           `json:"TopRightPictureShow"`
	ListHeaderText                 string           `json:"ListHeaderText"`
	ListFooterText                 string           `json:"ListFooterText"`
	ListHeaderFooterFontName       string           `json:"ListHeaderFooterFontName"`
	ListHeaderFooterFontSize       int              `json:"ListHeaderFooterFontSize"`
	ListHeaderFooterFontBold       bool             `json:"ListHeaderFooterFontBold"`
	ListHeaderFooterFontItalic     bool             `json:"ListHeaderFooterFontItalic"`
	ListHeaderFooterFontUnderlined bool             `json:"ListHeaderFooterFontUnderlined"`
	ListHeaderFooterAlignment      int              `json:"ListHeaderFooterAlignment"`
	Remarks                        string           `json:"Remarks"`
	LastChange                     rrtypes.DateTime `json:"LastChange"`
	FooterText1                    string           `json:"FooterText1"`
	FooterText2                    string           `json:"FooterText2"`
	FooterText3                    string           `json:"FooterText3"`
	Orders                         []ListOrder      `json:"Orders"`
	Filters                        []ListFilter     `json:"Filters"`
	Fields                         []ListField      `json:"Fields"`
	SelectorResults                []SelectorResult `json:"SelectorResults"`
}

type ListsEndpoint struct {
	event *EventApi
}

// Names returns the names of all lists.
func (l *ListsEndpoint) Names(ctx context.Context) ([]string, error) {
	var names []string
	if err := l.event.getJSON(ctx, "lists/names", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Delete removes a list.
func (l *ListsEndpoint) Delete(ctx context.Context, name string) error {
	_, err := l.event.get(ctx, "lists/delete", Params{"name": name})
	return err
}

// Copy duplicates a list.
func (l *ListsEndpoint) Copy(ctx context.Context, name, newName string) error {
	_, err := l.event.get(ctx, "lists/copy", Params{"name": name, "newName": newName})
	return err
}

// Rename renames a list.
func (l *ListsEndpoint) Rename(ctx context.Context, name, newName string) error {
	_, err := l.event.get(ctx, "lists/rename", Params{"name": name, "newName": newName})
	return err
}

// New creates an empty list.
func (l *ListsEndpoint) New(ctx context.Context, name string) error {
	_, err := l.event.get(ctx, "lists/new", Params{"name": name})
	return err
}

// Get returns a list definition.
func (l *ListsEndpoint) Get(ctx context.Context, name string, noTranslate bool, lang string) (List, error) {
	params := Params{
		"name":        name,
		"noTranslate": noTranslate,
		"lang":        lang,
	}
	var list List
	err := l.event.getJSON(ctx, "lists/get", params, &list)
	return list, err
}

// Save stores a list definition.
func (l *ListsEndpoint) Save(ctx context.Context, item List) error {
	return l.event.postJSON(ctx, "lists/save", nil, item, nil)
}

// CreateOptions narrow the records rendered into a list document.
type CreateOptions struct {
	Contests       []int
	Filter         string
	SelectorResult string
	Lang           string
}

func (l *ListsEndpoint) create(ctx context.Context, name, format string, opts CreateOptions, extra Params) ([]byte, error) {
	params := Params{
		"name":           name,
		"format":         format,
		"filter":         opts.Filter,
		"selectorResult": opts.SelectorResult,
		"lang":           opts.Lang,
	}
	if len(opts.Contests) > 0 {
		params["contest"] = opts.Contests
	}
	for key, value := range extra {
		params[key] = value
	}
	return l.event.get(ctx, "lists/create", params)
}

// CreatePDF renders the list as a PDF document.
func (l *ListsEndpoint) CreatePDF(ctx context.Context, name string, opts CreateOptions) ([]byte, error) {
	return l.create(ctx, name, "pdf", opts, nil)
}

// CreateHTML renders the list as an HTML document.
func (l *ListsEndpoint) CreateHTML(ctx context.Context, name string, opts CreateOptions) ([]byte, error) {
	return l.create(ctx, name, "html", opts, nil)
}

// CreateXML renders the list as an XML document.
func (l *ListsEndpoint) CreateXML(ctx context.Context, name, charset string, opts CreateOptions) ([]byte, error) {
	return l.create(ctx, name, "xml", opts, Params{"charset": charset})
}

// CreateJSON renders the list as a JSON document.
func (l *ListsEndpoint) CreateJSON(ctx context.Context, name string, opts CreateOptions) ([]byte, error) {
	return l.create(ctx, name, "JSON", opts, nil)
}

// CreateCSV renders the list as a CSV file.
func (l *ListsEndpoint) CreateCSV(ctx context.Context, name, charset, separator string, opts CreateOptions) ([]byte, error) {
	return l.create(ctx, name, "csv", opts, Params{"charset": charset, "separator": separator})
}

// CreateXLSX renders the list as an Excel file.
func (l *ListsEndpoint) CreateXLSX(ctx context.Context, name string, opts CreateOptions) ([]byte, error) {
	return l.create(ctx, name, "xlsx", opts, nil)
}

// ParticipantsNotActivated returns the number of not yet activated
// participants the list would show.
func (l *ListsEndpoint) ParticipantsNotActivated(ctx context.Context, name string, contests []int, onlyWithUnderscores bool) (int, error) {
	params := Params{
		"name":                name,
		"onlyWithUnderscores": onlyWithUnderscores,
	}
	if len(contests) > 0 {
		params["contest"] = contests
	}
	body, err := l.event.get(ctx, "lists/participantsnotactivated", params)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(body)))
}
