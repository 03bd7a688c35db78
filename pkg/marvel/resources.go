package marvel

import (
	"encoding/json"
	"fmt"
)

// Summary is an embedded reference to a single resource: its resourceURI
// plus display fields.
type Summary struct {
	ResourceURI string `json:"resourceURI"    yaml:"resourceURI"`
	Name        string `json:"name"           yaml:"name"`
	Role        string `json:"role,omitempty" yaml:"role,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
}

// List is an embedded reference to a related collection: its collectionURI,
// availability counts, and the first page of summaries.
type List struct {
	Available     int       `json:"available"     yaml:"available"`
	Returned      int       `json:"returned"      yaml:"returned"`
	CollectionURI string    `json:"collectionURI" yaml:"collectionURI"`
	Items         []Summary `json:"items"         yaml:"items"`
}

// URL is a public website link for a resource.
type URL struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url"  yaml:"url"`
}

// Image is a resource image; the gateway serves size variants by path
// convention.
type Image struct {
	Path      string `json:"path"      yaml:"path"`
	Extension string `json:"extension" yaml:"extension"`
}

// Variant renders the image URL for a named size variant, or the full-size
// URL when variant is empty.
func (i Image) Variant(variant string) string {
	if variant == "" {
		return i.Path + "." + i.Extension
	}

	return i.Path + "/" + variant + "." + i.Extension
}

// TextObject is a localized descriptive text attached to a comic.
type TextObject struct {
	Type     string `json:"type"     yaml:"type"`
	Language string `json:"language" yaml:"language"`
	Text     string `json:"text"     yaml:"text"`
}

// ComicDate is a certain kind of date attached to a comic.
type ComicDate struct {
	Type string `json:"type" yaml:"type"`
	Date string `json:"date" yaml:"date"`
}

// ComicPrice is a certain kind of price attached to a comic.
type ComicPrice struct {
	Type  string  `json:"type"  yaml:"type"`
	Price float64 `json:"price" yaml:"price"`
}

// Character represents a character resource.
type Character struct {
	ID          int    `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Modified    string `json:"modified"    yaml:"modified"`
	ResourceURI string `json:"resourceURI" yaml:"resourceURI"`
	URLs        []URL  `json:"urls"        yaml:"urls"`
	Thumbnail   Image  `json:"thumbnail"   yaml:"thumbnail"`
	Comics      List   `json:"comics"      yaml:"comics"`
	Stories     List   `json:"stories"     yaml:"stories"`
	Events      List   `json:"events"      yaml:"events"`
	Series      List   `json:"series"      yaml:"series"`
}

// Comic represents a comic resource.
type Comic struct {
	ID                 int          `json:"id"                 yaml:"id"`
	DigitalID          int          `json:"digitalId"          yaml:"digitalId"`
	Title              string       `json:"title"              yaml:"title"`
	IssueNumber        float64      `json:"issueNumber"        yaml:"issueNumber"`
	VariantDescription string       `json:"variantDescription" yaml:"variantDescription"`
	Description        string       `json:"description"        yaml:"description"`
	Modified           string       `json:"modified"           yaml:"modified"`
	ISBN               string       `json:"isbn"               yaml:"isbn"`
	UPC                string       `json:"upc"                yaml:"upc"`
	DiamondCode        string       `json:"diamondCode"        yaml:"diamondCode"`
	EAN                string       `json:"ean"                yaml:"ean"`
	ISSN               string       `json:"issn"               yaml:"issn"`
	Format             string       `json:"format"             yaml:"format"`
	PageCount          int          `json:"pageCount"          yaml:"pageCount"`
	TextObjects        []TextObject `json:"textObjects"        yaml:"textObjects"`
	ResourceURI        string       `json:"resourceURI"        yaml:"resourceURI"`
	URLs               []URL        `json:"urls"               yaml:"urls"`
	Series             Summary      `json:"series"             yaml:"series"`
	Variants           []Summary    `json:"variants"           yaml:"variants"`
	Collections        []Summary    `json:"collections"        yaml:"collections"`
	CollectedIssues    []Summary    `json:"collectedIssues"    yaml:"collectedIssues"`
	Dates              []ComicDate  `json:"dates"              yaml:"dates"`
	Prices             []ComicPrice `json:"prices"             yaml:"prices"`
	Thumbnail          Image        `json:"thumbnail"          yaml:"thumbnail"`
	Images             []Image      `json:"images"             yaml:"images"`
	Creators           List         `json:"creators"           yaml:"creators"`
	Characters         List         `json:"characters"         yaml:"characters"`
	Stories            List         `json:"stories"            yaml:"stories"`
	Events             List         `json:"events"             yaml:"events"`
}

// Creator represents a creator resource.
type Creator struct {
	ID          int    `json:"id"          yaml:"id"`
	FirstName   string `json:"firstName"   yaml:"firstName"`
	MiddleName  string `json:"middleName"  yaml:"middleName"`
	LastName    string `json:"lastName"    yaml:"lastName"`
	Suffix      string `json:"suffix"      yaml:"suffix"`
	FullName    string `json:"fullName"    yaml:"fullName"`
	Modified    string `json:"modified"    yaml:"modified"`
	ResourceURI string `json:"resourceURI" yaml:"resourceURI"`
	URLs        []URL  `json:"urls"        yaml:"urls"`
	Thumbnail   Image  `json:"thumbnail"   yaml:"thumbnail"`
	Series      List   `json:"series"      yaml:"series"`
	Stories     List   `json:"stories"     yaml:"stories"`
	Comics      List   `json:"comics"      yaml:"comics"`
	Events      List   `json:"events"      yaml:"events"`
}

// Event represents an event resource.
type Event struct {
	ID          int      `json:"id"          yaml:"id"`
	Title       string   `json:"title"       yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	ResourceURI string   `json:"resourceURI" yaml:"resourceURI"`
	URLs        []URL    `json:"urls"        yaml:"urls"`
	Modified    string   `json:"modified"    yaml:"modified"`
	Start       string   `json:"start"       yaml:"start"`
	End         string   `json:"end"         yaml:"end"`
	Thumbnail   Image    `json:"thumbnail"   yaml:"thumbnail"`
	Comics      List     `json:"comics"      yaml:"comics"`
	Stories     List     `json:"stories"     yaml:"stories"`
	Series      List     `json:"series"      yaml:"series"`
	Characters  List     `json:"characters"  yaml:"characters"`
	Creators    List     `json:"creators"    yaml:"creators"`
	Next        *Summary `json:"next"        yaml:"next"`
	Previous    *Summary `json:"previous"    yaml:"previous"`
}

// Series represents a series resource.
type Series struct {
	ID          int      `json:"id"          yaml:"id"`
	Title       string   `json:"title"       yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	ResourceURI string   `json:"resourceURI" yaml:"resourceURI"`
	URLs        []URL    `json:"urls"        yaml:"urls"`
	StartYear   int      `json:"startYear"   yaml:"startYear"`
	EndYear     int      `json:"endYear"     yaml:"endYear"`
	Rating      string   `json:"rating"      yaml:"rating"`
	Modified    string   `json:"modified"    yaml:"modified"`
	Thumbnail   Image    `json:"thumbnail"   yaml:"thumbnail"`
	Comics      List     `json:"comics"      yaml:"comics"`
	Stories     List     `json:"stories"     yaml:"stories"`
	Events      List     `json:"events"      yaml:"events"`
	Characters  List     `json:"characters"  yaml:"characters"`
	Creators    List     `json:"creators"    yaml:"creators"`
	Next        *Summary `json:"next"        yaml:"next"`
	Previous    *Summary `json:"previous"    yaml:"previous"`
}

// Story represents a story resource.
type Story struct {
	ID            int      `json:"id"            yaml:"id"`
	Title         string   `json:"title"         yaml:"title"`
	Description   string   `json:"description"   yaml:"description"`
	ResourceURI   string   `json:"resourceURI"   yaml:"resourceURI"`
	Type          string   `json:"type"          yaml:"type"`
	Modified      string   `json:"modified"      yaml:"modified"`
	Thumbnail     Image    `json:"thumbnail"     yaml:"thumbnail"`
	Comics        List     `json:"comics"        yaml:"comics"`
	Series        List     `json:"series"        yaml:"series"`
	Events        List     `json:"events"        yaml:"events"`
	Characters    List     `json:"characters"    yaml:"characters"`
	Creators      List     `json:"creators"      yaml:"creators"`
	OriginalIssue *Summary `json:"originalIssue" yaml:"originalIssue"`
}

// DataContainer is a typed page of results with its pagination state.
type DataContainer[T any] struct {
	Offset  int `json:"offset"  yaml:"offset"`
	Limit   int `json:"limit"   yaml:"limit"`
	Total   int `json:"total"   yaml:"total"`
	Count   int `json:"count"   yaml:"count"`
	Results []T `json:"results" yaml:"results"`
}

// DecodeResults lifts dynamic results into typed values through a JSON
// round-trip. AutoQuery link objects flatten back to their serialized
// reference shape on the way; fields the target type does not declare are
// dropped.
func DecodeResults[T any](results []Result) ([]T, error) {
	raw, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("encoding results: %w", err)
	}

	var typed []T

	err = json.Unmarshal(raw, &typed)
	if err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}

	return typed, nil
}
