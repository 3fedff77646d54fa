package models

import "time"

// Client is a customer of the store. Email and CPF are unique.
type Client struct {
	ID        string
	Name      string
	Email     string
	CPF       string
	CreatedAt time.Time
}

// ClientFilter narrows and paginates client listings. Empty string fields
// mean "no filter".
type ClientFilter struct {
	Name   string
	Email  string
	Limit  int
	Offset int
}
