package sheets

import (
	"fmt"

	"hackathon-portal-backend/internal/database/models"
)

// memberColumns is the number of columns each member slot occupies.
const memberColumns = 7

// Width is the fixed row width: team name plus five member slots (A..AJ).
const Width = 1 + memberColumns*models.MaxTeamMembers

// TextMarker makes the spreadsheet store a cell as typed. Rows are written
// as user-entered input, so without it phones and register numbers lose
// leading zeros, "1/2" becomes a date and "=..." becomes a live formula.
const TextMarker = "'"

// Header returns the header row.
func Header() []string {
	h := make([]string, 0, Width)
	h = append(h, "Team Name")
	for i := 1; i <= models.MaxTeamMembers; i++ {
		h = append(h,
			fmt.Sprintf("Member %d Name", i),
			fmt.Sprintf("Member %d Email", i),
			fmt.Sprintf("Member %d Phone", i),
			fmt.Sprintf("Member %d Register Number", i),
			fmt.Sprintf("Member %d Class", i),
			fmt.Sprintf("Member %d Department", i),
			fmt.Sprintf("Member %d School", i),
		)
	}
	return h
}

// TeamRow renders team as one fixed-width row; missing member slots stay blank.
func TeamRow(team *models.Team) []string {
	row := make([]string, Width)
	row[0] = textCell(team.TeamName)
	for i, m := range team.Members {
		if i >= models.MaxTeamMembers {
			break
		}
		base := 1 + i*memberColumns
		for j, v := range []string{
			m.Name, m.Email, m.Phone, m.RegisterNumber, m.ClassName, m.Department, m.School,
		} {
			row[base+j] = textCell(v)
		}
	}
	return row
}

func textCell(v string) string {
	if v == "" {
		return ""
	}
	return TextMarker + v
}

// Rows renders all teams in order.
func Rows(teams []models.Team) [][]string {
	rows := make([][]string, 0, len(teams))
	for i := range teams {
		rows = append(rows, TeamRow(&teams[i]))
	}
	return rows
}

// HeaderMatches reports whether got equals the expected header, ignoring
// trailing blanks.
func HeaderMatches(got []string) bool {
	want := Header()
	for len(got) > 0 && got[len(got)-1] == "" {
		got = got[:len(got)-1]
	}
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// lastColumn returns the A1 column letter of the final column.
func lastColumn() string {
	return columnName(Width)
}

func columnName(n int) string {
	name := ""
	for n > 0 {
		n--
		name = string(rune('A'+n%26)) + name
		n /= 26
	}
	return name
}
