package catalog

import (
	"encoding/json"
	"strings"
)

// TagField accepts either a JSON array of tags or an already
// comma-joined string, the two shapes the front end sends.
type TagField []string

func (t *TagField) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*t = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = nil
		return nil
	}
	*t = strings.Split(s, ",")
	return nil
}

// Join renders the column value. Order is preserved so the string
// splits back into the same list.
func (t TagField) Join() string { return strings.Join(t, ",") }

type CreateStudioRequest struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	City     string   `json:"city"`
	Services TagField `json:"services"`
	// Equipment is a legacy alias for Equipments; the shipped front
	// end sends both spellings.
	Equipments    TagField `json:"equipments"`
	Equipment     TagField `json:"equipment"`
	Status        string   `json:"status"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	ReservedUntil string   `json:"reservedUntil"`
}

// UpdateStudioRequest uses pointers so "not provided" and "explicitly
// cleared" stay distinct: a nil field is untouched, a present empty
// value clears where clearing is allowed (image, description,
// reservedUntil).
type UpdateStudioRequest struct {
	Name          *string   `json:"name"`
	City          *string   `json:"city"`
	Price         *float64  `json:"price"`
	Status        *string   `json:"status"`
	Image         *string   `json:"image"`
	Description   *string   `json:"description"`
	Services      *TagField `json:"services"`
	Equipments    *TagField `json:"equipments"`
	Equipment     *TagField `json:"equipment"`
	ReservedUntil *string   `json:"reservedUntil"`
}
