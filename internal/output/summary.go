// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"github.com/tfctl/bucketctl/internal/config"
)

// Summary describes everything a run created. The secret key is never part
// of it.
type Summary struct {
	Bucket      string
	Region      string
	AppURL      string
	PublicRead  string
	Username    string
	PolicyARN   string
	AccessKeyID string
	KeyCreated  time.Time
	EnvFile     string
	PolicyFile  string
}

// Rows returns the summary as resource/value pairs. Empty optional values
// are rendered as "-".
func (s Summary) Rows() [][]string {
	created := "-"
	if !s.KeyCreated.IsZero() {
		created = humanize.Time(s.KeyCreated)
	}

	return [][]string{
		{"bucket", s.Bucket},
		{"region", s.Region},
		{"cors origin", s.AppURL},
		{"public read", dash(s.PublicRead)},
		{"iam user", s.Username},
		{"policy", s.PolicyARN},
		{"policy file", dash(s.PolicyFile)},
		{"access key", s.AccessKeyID},
		{"key created", created},
		{"credentials", s.EnvFile},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Render writes the summary table to w. If w is nil, os.Stdout is used.
// Colors are applied when colorize is set.
func Render(w io.Writer, s Summary, colorize bool) {
	if w == nil {
		w = os.Stdout
	}

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		keyStyle    = lipgloss.NewStyle().Align(lipgloss.Left)
		valueStyle  = lipgloss.NewStyle().Align(lipgloss.Left).PaddingLeft(2)
	)

	if colorize {
		headerColor, keyColor, valueColor := getColors("colors")
		headerStyle = headerStyle.Foreground(headerColor)
		keyStyle = keyStyle.Foreground(keyColor)
		valueStyle = valueStyle.Foreground(valueColor)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return valueStyle
		}).
		Rows(s.Rows()...)

	fmt.Fprintln(w, headerStyle.Render("Provisioned"))
	fmt.Fprintln(w, t)
}

// getColors returns configured colors for the summary. Unconfigured colors
// are picked to suit the terminal background.
func getColors(key string) (header, name, value color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		if c, err := config.GetString(key); err == nil && c != "" {
			return lipgloss.Color(c)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	name = resolveColor(key+".even", "#333333", "#ffffff")
	value = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
