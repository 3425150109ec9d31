package model

type TemplateType int

const (
	TemplateSingle TemplateType = iota
	TemplateGroup
	TemplateSMS
	TemplateWebService
	TemplateGroupByID
)

type AttachmentType int

const (
	AttachmentFile AttachmentType = iota
	AttachmentCertificate
	AttachmentURL
	AttachmentUnsentInvoice
)

type AttachmentSendForType int

const (
	AttachmentSendForLast AttachmentSendForType = iota
	AttachmentSendForFirst
	AttachmentSendForAll
	AttachmentSendForAny
)

type HTTPHeader struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

type Attachment struct {
	Type    AttachmentType        `json:"Type"`
	Name    string                `json:"Name"`
	Label   string                `json:"Label"`
	Filter  string                `json:"Filter"`
	SendFor AttachmentSendForType `json:"SendFor"`
}

type EmailTemplate struct {
	Name                       string       `json:"Name"`
	Type                       TemplateType `json:"Type"`
	Sender                     string       `json:"Sender"`
	SenderName                 string       `json:"SenderName"`
	ReplyTo                    string       `json:"ReplyTo"`
	CC                         string       `json:"CC"`
	BCC                        string       `json:"BCC"`
	ReceiverField              string       `json:"ReceiverField"`
	HTML                       bool         `json:"HTML"`
	Method                     string       `json:"Method"`
	Subject                    string       `json:"Subject"`
	Text                       string       `json:"Text"`
	Header                     string       `json:"Header"`
	Footer                     string       `json:"Footer"`
	DefaultFilter              string       `json:"DefaultFilter"`
	SetCustomFieldAfterSending string       `json:"SetCustomFieldAfterSending"`
	SaveResultIn               string       `json:"SaveResultIn"`
	Attachments                []Attachment `json:"Attachments"`
	HTTPHeaders                []HTTPHeader `json:"HTTPHeaders"`
}

type PreviewAttachment struct {
	Type  AttachmentType `json:"Type"`
	Name  string         `json:"Name"`
	Label string         `json:"Label"`
	Bib   int            `json:"Bib"`
	PID   int            `json:"PID"`
}

type Preview struct {
	Type        TemplateType        `json:"Type"`
	Bibs        []int               `json:"Bibs"`
	PIDs        []int               `json:"PIDs"`
	Sender      string              `json:"Sender"`
	SenderName  string              `json:"SenderName"`
	ReplyTo     string              `json:"ReplyTo"`
	CC          string              `json:"CC"`
	BCC         string              `json:"BCC"`
	CellPhone   string              `json:"CellPhone"`
	Email       string              `json:"Email"`
	Subject     string              `json:"Subject"`
	Text        string              `json:"Text"`
	HTML        bool                `json:"HTML"`
	URL         string              `json:"URL"`
	Method      string              `json:"Method"`
	Attachments []PreviewAttachment `json:"Attachments"`
	HTTPHeaders []HTTPHeader        `json:"HTTPHeaders"`
	Errors      []string            `json:"Errors"`
}
