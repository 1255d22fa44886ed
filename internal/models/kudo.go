package models

import "gorm.io/gorm"

// Colours and Emojis list the valid KudoStyle values.
var (
	Colours = []string{"RED", "GREEN", "YELLOW", "BLUE", "WHITE"}
	Emojis  = []string{"THUMBSUP", "PARTY", "HANDSUP"}
)

// Kudo is an appreciation message sent from one user to another.
// A Kudo is immutable once created and owns exactly one KudoStyle.
type Kudo struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Message     string    `json:"message" validate:"required"`
	AuthorID    string    `json:"authorId" gorm:"index;type:varchar(36)"`
	RecipientID string    `json:"recipientId" gorm:"index;type:varchar(36)"`
	Author      User      `json:"author" gorm:"foreignKey:AuthorID"`
	Style       KudoStyle `json:"style" gorm:"foreignKey:KudoID"`
	gorm.Model
}

// KudoStyle is the emoji/colour combination attached to one Kudo.
// Styles are created together with their Kudo and never shared.
type KudoStyle struct {
	ID               string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	KudoID           string `json:"-" gorm:"index;type:varchar(36)"`
	BackgroundColour string `json:"backgroundColour" gorm:"type:varchar(16)" validate:"required,oneof=RED GREEN YELLOW BLUE WHITE"`
	TextColour       string `json:"textColour" gorm:"type:varchar(16)" validate:"required,oneof=RED GREEN YELLOW BLUE WHITE"`
	Emoji            string `json:"emoji" gorm:"type:varchar(16)" validate:"required,oneof=THUMBSUP PARTY HANDSUP"`
	gorm.Model
}

// KudoSort selects the ordering of the kudos feed.
type KudoSort int

const (
	// SortDefault leaves the ordering unspecified.
	SortDefault KudoSort = iota
	// SortByDate orders by creation time, newest first.
	SortByDate
	// SortBySender orders by author first name ascending.
	SortBySender
	// SortByEmoji orders by style emoji ascending.
	SortByEmoji
)

// ParseKudoSort maps a `sort` query parameter value to a KudoSort.
// Unrecognized values fall back to SortDefault.
func ParseKudoSort(s string) KudoSort {
	switch s {
	case "date":
		return SortByDate
	case "sender":
		return SortBySender
	case "emoji":
		return SortByEmoji
	default:
		return SortDefault
	}
}
