package models

// PositionCategory is the canonical playing position.
type PositionCategory string

const (
	PositionForward    PositionCategory = "forward"
	PositionDefender   PositionCategory = "defender"
	PositionGoalkeeper PositionCategory = "goalkeeper"
	// PositionInvalid marks a cell with no usable text ("position recorded incorrectly").
	PositionInvalid PositionCategory = "invalid"
	// PositionOther keeps unrecognized free text in Position.Text.
	PositionOther PositionCategory = "other"
)

var positionLabels = map[PositionCategory]string{
	PositionForward:    "нападающий",
	PositionDefender:   "защитник",
	PositionGoalkeeper: "вратарь",
	PositionInvalid:    "Позиция записана неверно",
}

// Position is a classified playing position.
type Position struct {
	Category PositionCategory `json:"category"`
	// Text is the cleaned free text for PositionOther.
	Text string `json:"text,omitempty"`
}

// InvalidPosition returns the "position recorded incorrectly" sentinel.
func InvalidPosition() Position {
	return Position{Category: PositionInvalid}
}

// Label returns the Russian label used on federation forms.
func (p Position) Label() string {
	if label, ok := positionLabels[p.Category]; ok {
		return label
	}
	return p.Text
}
