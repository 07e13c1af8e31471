// Package fitmsg assembles the ordered FIT message sequence for a
// strength training activity. It emits structured records with named
// fields; turning them into bytes is the encoder's job.
package fitmsg

// Global FIT message numbers emitted by the assembler.
const (
	MesgNumFileID      uint16 = 0
	MesgNumSession     uint16 = 18
	MesgNumLap         uint16 = 19
	MesgNumEvent       uint16 = 21
	MesgNumDeviceInfo  uint16 = 23
	MesgNumWorkoutStep uint16 = 27
	MesgNumActivity    uint16 = 34
	MesgNumSet         uint16 = 225
)

var mesgNames = map[uint16]string{
	MesgNumFileID:      "file_id",
	MesgNumSession:     "session",
	MesgNumLap:         "lap",
	MesgNumEvent:       "event",
	MesgNumDeviceInfo:  "device_info",
	MesgNumWorkoutStep: "workout_step",
	MesgNumActivity:    "activity",
	MesgNumSet:         "set",
}

// MesgName returns the profile name for a global message number.
func MesgName(num uint16) string {
	if name, ok := mesgNames[num]; ok {
		return name
	}
	return "unknown"
}

// Field is one named value of an assembled message.
type Field struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Message is one semantic FIT record: a global message number plus fields
// in emission order. Messages reference each other only by small integer
// indices, never by pointer, so the ordered sequence is the whole
// contract with the encoder.
type Message struct {
	Num    uint16  `json:"mesg_num"`
	Name   string  `json:"mesg_name"`
	Fields []Field `json:"fields"`
}

// Get returns the named field value and whether it is present.
func (m *Message) Get(name string) (any, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

func newMessage(num uint16, fields ...Field) Message {
	return Message{Num: num, Name: MesgName(num), Fields: fields}
}

func field(name string, value any) Field {
	return Field{Name: name, Value: value}
}
