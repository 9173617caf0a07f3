package main

import (
	"strconv"
	"strings"

	"github.com/mavenreposs/component-error/errorbag"
	"github.com/mavenreposs/component-error/internal/errors"
)

// collect builds a bag from CODE=MESSAGE entries and CODE=VALUE data
// entries. Malformed entries are gathered in rejected instead of stopping
// at the first one.
func collect(entries, data []string) (bag, rejected *errorbag.Bag) {
	bag = errorbag.New()
	rejected = errorbag.New()
	errFactory := errors.New()

	for _, entry := range entries {
		code, msg, err := splitEntry(entry)
		if err != nil {
			errors.Collect(rejected, errFactory.WithData(err.Code(), entry).WithMessage(err.Error()))
			continue
		}
		bag.Add(code, msg)
	}

	for _, entry := range data {
		code, value, err := splitEntry(entry)
		if err != nil {
			errors.Collect(rejected, errFactory.WithData(err.Code(), entry).WithMessage(err.Error()))
			continue
		}
		bag.AddDataFor(code, parseValue(value))
	}

	return bag, rejected
}

func splitEntry(entry string) (errorbag.Code, string, errors.Error) {
	errFactory := errors.New()

	raw, value, ok := strings.Cut(entry, "=")
	if !ok {
		return "", "", errFactory.New(errors.ErrMalformedEntry)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", errFactory.New(errors.ErrEmptyCode)
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return errorbag.CodeOf(n), value, nil
	}
	return errorbag.Code(raw), value, nil
}

// parseValue keeps numbers and booleans typed so they log as JSON scalars
func parseValue(value string) any {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
