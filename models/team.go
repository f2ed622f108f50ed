// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Team is the team a user picked on sign-up. It only drives presentation:
// the recorder controls are tinted with the team colour.
type Team string

const (
	TeamRed     Team = "RED"
	TeamBlue    Team = "BLUE"
	TeamYellow  Team = "YELLOW"
	TeamUnknown Team = "UNKNOWN"
)

// Color returns the CSS colour token used for the team accent.
func (t Team) Color() string {
	switch t {
	case TeamRed:
		return "team-red"
	case TeamBlue:
		return "team-blue"
	case TeamYellow:
		return "team-yellow"
	default:
		return "team-unknown"
	}
}
