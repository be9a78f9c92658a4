package config

import (
	"strconv"

	"github.com/thenoetrevino/roster/internal/models"
)

const defaultSalaryDecimals = 2

// Display controls how records are rendered in human-readable output
type Display struct {
	// DateLayout is a Go time layout, day-first by default
	DateLayout string `yaml:"date_layout"`
	// SalaryDecimals is the number of decimals shown for base salaries
	SalaryDecimals *int `yaml:"salary_decimals"`
}

// DefaultDisplay returns the display settings used when none are configured
func DefaultDisplay() Display {
	d := Display{}
	d.applyDefaults()
	return d
}

func (d *Display) applyDefaults() {
	if d.DateLayout == "" {
		d.DateLayout = models.DisplayDateLayout
	}
	if d.SalaryDecimals == nil || *d.SalaryDecimals < 0 {
		decimals := defaultSalaryDecimals
		d.SalaryDecimals = &decimals
	}
}

// FormatDate renders a date with the configured layout
func (d Display) FormatDate(date models.Date) string {
	layout := d.DateLayout
	if layout == "" {
		layout = models.DisplayDateLayout
	}
	return date.Format(layout)
}

// FormatSalary renders a salary with the configured precision
func (d Display) FormatSalary(v float64) string {
	decimals := defaultSalaryDecimals
	if d.SalaryDecimals != nil && *d.SalaryDecimals >= 0 {
		decimals = *d.SalaryDecimals
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
