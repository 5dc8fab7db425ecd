// Package career holds the structured career data extracted from a resume.
package career

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Data is the structured-extraction result. Every collection is optional and
// independent; a Data with all collections empty is still a valid result.
type Data struct {
	Experiences    []Experience    `json:"experiences"`
	Educations     []Education     `json:"educations"`
	Skills         []Text          `json:"skills"`
	Languages      []Language      `json:"languages"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`
}

type Experience struct {
	Title        Text `json:"title"`
	Company      Text `json:"company"`
	StartDate    Text `json:"start_date"`
	EndDate      Text `json:"end_date"`
	Description  Text `json:"description"`
	Achievements Text `json:"achievements"`
}

type Education struct {
	Institution Text `json:"institution"`
	Degree      Text `json:"degree"`
	StartDate   Text `json:"start_date"`
	EndDate     Text `json:"end_date"`
	Description Text `json:"description"`
}

type Language struct {
	Language Text `json:"language"`
	Level    Text `json:"level"`
}

type Certification struct {
	Name         Text `json:"name"`
	Issuer       Text `json:"issuer"`
	DateObtained Text `json:"date_obtained"`
}

type Project struct {
	Name         Text `json:"name"`
	Description  Text `json:"description"`
	StartDate    Text `json:"start_date"`
	EndDate      Text `json:"end_date"`
	URL          Text `json:"url"`
	Technologies Text `json:"technologies"`
	Role         Text `json:"role"`
	Achievements Text `json:"achievements"`
}

// Empty reports whether no collection has any item.
func (d *Data) Empty() bool {
	return len(d.Experiences) == 0 &&
		len(d.Educations) == 0 &&
		len(d.Skills) == 0 &&
		len(d.Languages) == 0 &&
		len(d.Certifications) == 0 &&
		len(d.Projects) == 0
}

// Text is a string field as emitted by the model. Besides JSON strings it
// accepts null (empty), numbers and booleans (their literal text) and arrays
// of those (one element per line), since models do not always keep to the
// requested shape.
type Text string

func (t Text) String() string { return string(t) }

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '[':
		var items []Text
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		lines := make([]string, 0, len(items))
		for _, item := range items {
			if s := strings.TrimSpace(string(item)); s != "" {
				lines = append(lines, s)
			}
		}
		*t = Text(strings.Join(lines, "\n"))
	case '{':
		return errors.New("career: object where text was expected")
	default:
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		switch x := v.(type) {
		case float64:
			*t = Text(strconv.FormatFloat(x, 'f', -1, 64))
		case bool:
			*t = Text(strconv.FormatBool(x))
		}
	}
	return nil
}
