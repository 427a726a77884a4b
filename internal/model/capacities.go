package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

type PropertyKind int

const (
	KindAbsent PropertyKind = iota
	KindString
	KindInteger
)

// PropertyValue is a single Capacities property value: a string, an integer
// or nothing at all.
type PropertyValue struct {
	kind PropertyKind
	str  string
	num  int
}

func StringValue(s string) PropertyValue {
	return PropertyValue{kind: KindString, str: s}
}

func IntValue(n int) PropertyValue {
	return PropertyValue{kind: KindInteger, num: n}
}

func AbsentValue() PropertyValue {
	return PropertyValue{}
}

func (v PropertyValue) Kind() PropertyKind {
	return v.kind
}

// String returns the textual form used for blank checks and console output.
func (v PropertyValue) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return strconv.Itoa(v.num)
	default:
		return ""
	}
}

// IsBlank is true for absent values and for strings that are empty after trimming.
func (v PropertyValue) IsBlank() bool {
	return v.kind == KindAbsent || strings.TrimSpace(v.String()) == ""
}

func (v PropertyValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindInteger:
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}

type Property struct {
	ID    string
	Value PropertyValue
}

// ImportPayload is the converted form of one BookRecord.
type ImportPayload struct {
	SpaceID     string
	StructureID string
	Title       string
	Properties  []Property
	Warnings    []string
}

// Set assigns value to id, replacing an earlier assignment of the same id.
func (p *ImportPayload) Set(id string, value PropertyValue) {
	for i := range p.Properties {
		if p.Properties[i].ID == id {
			p.Properties[i].Value = value
			return
		}
	}
	p.Properties = append(p.Properties, Property{ID: id, Value: value})
}

func (p *ImportPayload) Get(id string) (PropertyValue, bool) {
	for _, prop := range p.Properties {
		if prop.ID == id {
			return prop.Value, true
		}
	}
	return AbsentValue(), false
}

// Wire builds the request body. Properties with an empty id or a blank value
// are left out entirely.
func (p ImportPayload) Wire() CreateObjectRequest {
	props := make(map[string]PropertyValue, len(p.Properties))
	for _, prop := range p.Properties {
		if prop.ID == "" || prop.Value.IsBlank() {
			continue
		}
		props[prop.ID] = prop.Value
	}

	return CreateObjectRequest{
		SpaceID:     p.SpaceID,
		StructureID: p.StructureID,
		Title:       p.Title,
		Properties:  props,
	}
}

type CreateObjectRequest struct {
	SpaceID     string                   `json:"spaceId"`
	StructureID string                   `json:"structureId"`
	Title       string                   `json:"title"`
	Properties  map[string]PropertyValue `json:"properties"`
}

type SpaceInfo struct {
	Structures []Structure `json:"structures"`
}

type Structure struct {
	ID                  string               `json:"id"`
	Title               string               `json:"title"`
	PluralName          string               `json:"pluralName"`
	PropertyDefinitions []PropertyDefinition `json:"propertyDefinitions"`
}

type PropertyDefinition struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DataType string `json:"dataType"`
}

// FindStructure returns the first structure with the given title.
func (s SpaceInfo) FindStructure(title string) (Structure, bool) {
	for _, st := range s.Structures {
		if st.Title == title {
			return st, true
		}
	}
	return Structure{}, false
}

// PropertyMapping is one ready-to-paste line of the property map: the
// normalized property name, its id and the env variable configuring it
// (empty when the name has no matching field).
type PropertyMapping struct {
	Key    string
	ID     string
	EnvKey string
}
