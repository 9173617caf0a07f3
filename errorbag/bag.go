package errorbag

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Bag accumulates error codes, their messages and per-code data.
// The zero value is an empty bag ready to use.
type Bag struct {
	codes    []Code
	messages map[Code][]string

	// data keeps its own key order so String renders deterministically.
	dataCodes []Code
	data      map[Code]any
}

// New returns an empty bag.
func New() *Bag {
	return &Bag{}
}

// NewWith returns a bag holding a single code with a single message.
func NewWith(code Code, message string) *Bag {
	b := &Bag{}
	b.Add(code, message)
	return b
}

// NewWithData is NewWith plus data stored for code.
func NewWithData(code Code, message string, data any) *Bag {
	b := NewWith(code, message)
	b.AddDataFor(code, data)
	return b
}

// IsError reports whether v is a Bag, regardless of its content. An empty
// bag is still an error carrier; values that merely look like a Bag are not.
func IsError(v any) bool {
	switch v.(type) {
	case *Bag, Bag:
		return true
	default:
		return false
	}
}

// As finds the first Bag in err's chain.
func As(err error) (*Bag, bool) {
	var b *Bag
	if errors.As(err, &b) && b != nil {
		return b, true
	}
	return nil, false
}

// Codes returns every code in insertion order.
func (b *Bag) Codes() []Code {
	if b == nil || len(b.codes) == 0 {
		return []Code{}
	}
	return slices.Clone(b.codes)
}

// Code returns the first code added, or "" if the bag is empty.
func (b *Bag) Code() Code {
	if b == nil || len(b.codes) == 0 {
		return ""
	}
	return b.codes[0]
}

// Messages returns the messages of every code, flattened in code order.
func (b *Bag) Messages() []string {
	all := []string{}
	if b == nil {
		return all
	}
	for _, code := range b.codes {
		all = append(all, b.messages[code]...)
	}
	return all
}

// MessagesFor returns the messages stored under code, or an empty slice
// if code is unknown.
func (b *Bag) MessagesFor(code Code) []string {
	if b == nil {
		return []string{}
	}
	msgs, ok := b.messages[code]
	if !ok {
		return []string{}
	}
	return slices.Clone(msgs)
}

// Message returns the first message of the first code.
func (b *Bag) Message() string {
	return b.MessageFor(b.Code())
}

// MessageFor returns the first message stored under code, or "".
func (b *Bag) MessageFor(code Code) string {
	if b == nil {
		return ""
	}
	msgs := b.messages[code]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

// Data returns the data of the first code. ok is false when nothing was
// stored, which is distinct from a stored nil.
func (b *Bag) Data() (data any, ok bool) {
	return b.DataFor(b.Code())
}

// DataFor returns the data stored for code.
func (b *Bag) DataFor(code Code) (data any, ok bool) {
	if b == nil {
		return nil, false
	}
	data, ok = b.data[code]
	return data, ok
}

// Len returns the number of distinct codes.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.codes)
}

// Empty reports whether no code has been added.
func (b *Bag) Empty() bool {
	return b.Len() == 0
}

// Add appends message to code, creating the code if it is new. Any code is
// accepted, including "". Data is left untouched.
func (b *Bag) Add(code Code, message string) {
	if b.messages == nil {
		b.messages = make(map[Code][]string)
	}
	if _, ok := b.messages[code]; !ok {
		b.codes = append(b.codes, code)
	}
	b.messages[code] = append(b.messages[code], message)
}

// AddWithData appends message to code and replaces the data of code.
// A code carries many messages but only one data value.
func (b *Bag) AddWithData(code Code, message string, data any) {
	b.Add(code, message)
	b.AddDataFor(code, data)
}

// AddData replaces the data of the current first code. On an empty bag the
// data is keyed under "" since that is what Code returns.
func (b *Bag) AddData(data any) {
	b.AddDataFor(b.Code(), data)
}

// AddDataFor replaces the data of code. code does not need to have messages.
func (b *Bag) AddDataFor(code Code, data any) {
	if b.data == nil {
		b.data = make(map[Code]any)
	}
	if _, ok := b.data[code]; !ok {
		b.dataCodes = append(b.dataCodes, code)
	}
	b.data[code] = data
}

// Error renders every code with its messages, so a *Bag can be returned
// wherever an error is expected.
func (b *Bag) Error() string {
	if b.Empty() {
		return "no errors"
	}

	var sb strings.Builder
	for _, code := range b.codes {
		for _, msg := range b.messages[code] {
			if sb.Len() > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(string(code))
			sb.WriteString(": ")
			sb.WriteString(msg)
		}
	}
	return sb.String()
}

// String is a debug rendering of both mappings. Its format is not stable.
func (b *Bag) String() string {
	if b == nil {
		return "Bag{}"
	}

	var sb strings.Builder
	sb.WriteString("Bag{errors=[")
	for i, code := range b.codes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%v", code, b.messages[code])
	}
	sb.WriteString("], data=[")
	for i, code := range b.dataCodes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s:%v", code, b.data[code])
	}
	sb.WriteString("]}")
	return sb.String()
}
