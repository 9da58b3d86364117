package models

// Notion page-creation payload types. Only the subset of the pages API
// this application writes is modelled: a parent database reference plus
// date and number properties.

// PageParent identifies the database a new page is created under.
type PageParent struct {
	DatabaseID string `json:"database_id"`
}

// PageProperties maps a property name (e.g. "Date", "Resting Heart Rate")
// to its typed value object.
type PageProperties map[string]any

// PageCreateRequest is the body of POST /v1/pages.
type PageCreateRequest struct {
	Parent     PageParent     `json:"parent"`
	Properties PageProperties `json:"properties"`
}

// DateProperty is a Notion date property value.
type DateProperty struct {
	Date DateValue `json:"date"`
}

// DateValue holds the ISO-8601 start date of a date property.
type DateValue struct {
	Start string `json:"start"`
}

// NumberProperty is a Notion number property value.
type NumberProperty struct {
	Number float64 `json:"number"`
}

// NewDateProperty builds a date property from a YYYY-MM-DD string.
func NewDateProperty(day string) DateProperty {
	return DateProperty{Date: DateValue{Start: day}}
}

// NewNumberProperty builds a number property.
func NewNumberProperty(v float64) NumberProperty {
	return NumberProperty{Number: v}
}
