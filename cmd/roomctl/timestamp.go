package main

import (
	"fmt"
	"time"
)

// Поддерживаемые форматы времени для флагов
var (
	dateTimeLayouts = []string{"02.01.2006 15:04", "2006-01-02 15:04", "2006-01-02T15:04", time.RFC3339}
	dateLayouts     = []string{"02.01.2006", "2006-01-02"}
)

// FlexibleTimestamp - значение флага, принимающее несколько форматов времени
type FlexibleTimestamp struct {
	Layouts         []string
	Location        *time.Location
	Time            *time.Time
	UsedLayoutIndex int
}

// Set parses the string value to timestamp
func (v *FlexibleTimestamp) Set(value string) error {
	if len(v.Layouts) == 0 {
		return fmt.Errorf("no layouts provided")
	}

	loc := v.Location
	if loc == nil {
		loc = time.UTC
	}

	for i, layout := range v.Layouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			v.Time = &t
			v.UsedLayoutIndex = i
			return nil
		}
	}

	return fmt.Errorf("no time format matched %s", value)
}

func (v FlexibleTimestamp) String() string {
	if v.Time == nil || len(v.Layouts) == 0 {
		return ""
	}
	return v.Time.Format(v.Layouts[v.UsedLayoutIndex])
}

// Get returns the flag structure
func (v *FlexibleTimestamp) Get() interface{} {
	return v.Time
}
