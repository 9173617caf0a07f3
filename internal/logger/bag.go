package logger

import (
	"github.com/mavenreposs/component-error/errorbag"
	"github.com/rs/zerolog"
)

type codeArray []errorbag.Code

func (a codeArray) MarshalZerologArray(arr *zerolog.Array) {
	for _, code := range a {
		arr.Str(string(code))
	}
}

type messageArray []string

func (a messageArray) MarshalZerologArray(arr *zerolog.Array) {
	for _, msg := range a {
		arr.Str(msg)
	}
}

// bagObject renders a bag as {code: {messages: [...], data: ...}}
type bagObject struct {
	bag *errorbag.Bag
}

func (o bagObject) MarshalZerologObject(e *zerolog.Event) {
	for _, code := range o.bag.Codes() {
		e.Object(string(code), codeObject{bag: o.bag, code: code})
	}
}

type codeObject struct {
	bag  *errorbag.Bag
	code errorbag.Code
}

func (o codeObject) MarshalZerologObject(e *zerolog.Event) {
	e.Array("messages", messageArray(o.bag.MessagesFor(o.code)))
	if data, ok := o.bag.DataFor(o.code); ok {
		e.Interface("data", data)
	}
}
