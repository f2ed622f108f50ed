// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the authenticated account a call recording belongs to.
//
// The service never writes users; rows are created by the wider application
// and only read here to resolve the session subject.
type User struct {
	// ID is the primary key of the "users" table (UUID string).
	ID string `json:"id"`

	// Email is the account e-mail address.
	Email string `json:"email"`

	// FirstName is shown in the recorder prompt ("my name is ...").
	FirstName string `json:"first_name"`

	// Team selects the accent colour of the recorder controls.
	Team Team `json:"team"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for User.
func (u User) TableName() string {
	return "users"
}
