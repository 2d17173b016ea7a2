package workday

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type calendarFile struct {
	Holidays []Holiday `yaml:"holidays"`
}

// ParseCalendar reads a YAML holiday table of the form
//
//	holidays:
//	  - date: "2025-06-02"
//	    name: Shavuot
func ParseCalendar(r io.Reader) (HolidayCalendar, error) {
	var file calendarFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return HolidayCalendar{}, fmt.Errorf("failed to decode holiday calendar: %w", err)
	}
	for i, h := range file.Holidays {
		if _, err := ParseDate(h.Date); err != nil {
			return HolidayCalendar{}, fmt.Errorf("%w: entry %d has date %q", ErrInvalidCalendarEntry, i, h.Date)
		}
	}
	return NewHolidayCalendar(file.Holidays...), nil
}

// LoadCalendarFile reads a YAML holiday table from disk.
func LoadCalendarFile(path string) (HolidayCalendar, error) {
	f, err := os.Open(path)
	if err != nil {
		return HolidayCalendar{}, fmt.Errorf("failed to open holiday calendar %s: %w", path, err)
	}
	defer f.Close()
	return ParseCalendar(f)
}
