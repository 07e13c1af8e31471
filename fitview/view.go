// Package fitview projects decoded FIT message bags into the semantic
// view used for display and validation.
package fitview

import (
	"time"

	hevyfit "github.com/lucasjlepore/hevyfit"
	"github.com/lucasjlepore/hevyfit/fitmsg"
)

// Bag is the generic output of a FIT codec: message family name to
// decoded field maps in file order, plus the codec's non-fatal error
// list. Family names follow the profile ("file_id", "session", ...).
type Bag struct {
	Messages map[string][]map[string]any `json:"messages"`
	Errors   []string                    `json:"errors,omitempty"`
}

// FileID is the identifying projection of the first file_id message.
type FileID struct {
	Manufacturer any    `json:"manufacturer,omitempty"`
	Type         any    `json:"type,omitempty"`
	TimeCreated  string `json:"time_created,omitempty"`
	SerialNumber any    `json:"serial_number,omitempty"`
}

// View is the semantic shape shared by assembled output and decoded
// uploads. Every family is optional: a file without one is still valid.
type View struct {
	FileID     *FileID          `json:"file_id,omitempty"`
	Activities []map[string]any `json:"activities,omitempty"`
	Sessions   []map[string]any `json:"sessions,omitempty"`
	Laps       []map[string]any `json:"laps,omitempty"`
	Sets       []map[string]any `json:"sets,omitempty"`
	Errors     []string         `json:"errors,omitempty"`
}

// Project extracts the semantic view from a decoded message bag. It
// never fails; absent families stay nil and codec errors ride along as
// diagnostics for the caller to judge.
func Project(bag Bag) View {
	v := View{Errors: bag.Errors}
	if ids := bag.Messages["file_id"]; len(ids) > 0 {
		v.FileID = projectFileID(ids[0])
	}
	v.Activities = bag.Messages["activity"]
	v.Sessions = bag.Messages["session"]
	v.Laps = bag.Messages["lap"]
	v.Sets = bag.Messages["set"]
	return v
}

// BagFromMessages folds an assembled message sequence into a decoded-bag
// shape, which lets the converter's own output be validated through the
// same projection as decoded uploads.
func BagFromMessages(msgs []fitmsg.Message) Bag {
	bag := Bag{Messages: make(map[string][]map[string]any)}
	for _, msg := range msgs {
		fields := make(map[string]any, len(msg.Fields))
		for _, f := range msg.Fields {
			fields[f.Name] = f.Value
		}
		bag.Messages[msg.Name] = append(bag.Messages[msg.Name], fields)
	}
	return bag
}

func projectFileID(fields map[string]any) *FileID {
	id := &FileID{
		Manufacturer: fields["manufacturer"],
		Type:         fields["type"],
		SerialNumber: fields["serial_number"],
	}
	if created, ok := fields["time_created"]; ok {
		id.TimeCreated = formatInstant(created)
	}
	return id
}

// formatInstant renders either a wall-clock time or a raw FIT timestamp
// as RFC 3339.
func formatInstant(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case string:
		return t
	case uint32:
		return hevyfit.FitEpoch.Add(time.Duration(t) * time.Second).Format(time.RFC3339)
	case int:
		return hevyfit.FitEpoch.Add(time.Duration(t) * time.Second).Format(time.RFC3339)
	case int64:
		return hevyfit.FitEpoch.Add(time.Duration(t) * time.Second).Format(time.RFC3339)
	case float64:
		return hevyfit.FitEpoch.Add(time.Duration(t) * time.Second).Format(time.RFC3339)
	default:
		return ""
	}
}
