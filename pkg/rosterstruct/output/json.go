package output

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON serializes rosters to JSON.
func ToJSON(rosters []*models.Roster, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rosters, "", "  ")
	}
	return json.Marshal(rosters)
}

// RosterToJSON serializes a single roster to JSON.
func RosterToJSON(roster *models.Roster, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(roster, "", "  ")
	}
	return json.Marshal(roster)
}
