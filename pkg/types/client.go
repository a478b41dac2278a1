package types

import (
	"fmt"
	"slices"
)

// Client is a customer of the business. A client is identified by phone
// number; the name, email and tags may change without making it a different
// client.
type Client struct {
	Name  string   `json:"name" validate:"required,max=100,personname"`
	Phone string   `json:"phone" validate:"required,number,min=3,max=15"`
	Email string   `json:"email" validate:"required,email,max=254"`
	Tags  []string `json:"tags,omitempty" validate:"dive,alphanum,max=30"`
}

// IsSame reports whether both values have the same phone number.
func (c Client) IsSame(other Client) bool {
	return c.Phone == other.Phone
}

// Equal reports whether every field of both clients matches.
func (c Client) Equal(other Client) bool {
	return c.Name == other.Name &&
		c.Phone == other.Phone &&
		c.Email == other.Email &&
		slices.Equal(c.Tags, other.Tags)
}

// HasTag reports whether the client carries tag (case-insensitive).
func (c Client) HasTag(tag string) bool {
	return slices.ContainsFunc(c.Tags, func(t string) bool {
		return SameText(t, tag)
	})
}

func (c Client) String() string {
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Tags: %v", c.Name, c.Phone, c.Email, c.Tags)
}
