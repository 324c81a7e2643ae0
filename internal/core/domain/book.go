package domain

import "errors"

var ErrAlreadyWishlisted = errors.New("book already in wishlist")

// Book is a normalized catalog work record. Instances are produced by the
// catalog client and never mutated afterwards; a copy may be persisted
// verbatim into the wishlist collection.
type Book struct {
	// ID is the catalog work key, e.g. "/works/OL45804W".
	ID               string   `json:"id" bson:"id"`
	Title            string   `json:"title" bson:"title"`
	Authors          []string `json:"authors" bson:"authors"`
	CoverID          *int     `json:"cover_id,omitempty" bson:"cover_id,omitempty"`
	FirstPublishYear *int     `json:"first_publish_year,omitempty" bson:"first_publish_year,omitempty"`
	Description      string   `json:"description,omitempty" bson:"description,omitempty"`
	Subjects         []string `json:"subjects,omitempty" bson:"subjects,omitempty"`
	Languages        []string `json:"languages,omitempty" bson:"languages,omitempty"`
}

// SortOrder is an accepted sort key for catalog searches.
type SortOrder string

const (
	SortNew    SortOrder = "new"
	SortOld    SortOrder = "old"
	SortTitle  SortOrder = "title"
	SortAuthor SortOrder = "author"
)

// Filters carries optional search constraints. A nil/zero field means
// "no constraint", not an empty-string constraint.
type Filters struct {
	Subject          string
	Author           string
	Title            string
	Language         string
	FirstPublishYear int // zero = unset
	Sort             SortOrder
}
