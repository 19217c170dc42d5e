package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/CristiGvl/corecheck/internal/config"
	"github.com/CristiGvl/corecheck/internal/sysinfo"
)

// Banner identifies the tool in text output
type Banner struct {
	Name    string
	Version string
	Author  string
}

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.Bold)
	failColor   = color.New(color.FgYellow)
)

// Render writes r to w in the given format
func Render(w io.Writer, r *sysinfo.Report, format string, banner Banner) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText, "":
		return renderText(w, r, banner)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderText(w io.Writer, r *sysinfo.Report, banner Banner) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n [ %s   v%s ]", banner.Name, banner.Version)
	if banner.Author != "" {
		fmt.Fprintf(&b, "    Developed by %s", banner.Author)
	}
	b.WriteString("\n")

	b.WriteString("\n " + headerColor.Sprint("[CPU INFO]") + " ===========================================\n\n")
	if r.Processor == nil {
		fmt.Fprintf(&b, " %s\n", failure(r.ProcessorError))
	} else {
		p := r.Processor
		if p.Brand != "" {
			fmt.Fprintf(&b, " %s\n", p.Brand)
		}
		b.WriteString("\n")
		if p.Vendor != "" {
			field(&b, "Vendor", p.Vendor)
		}
		if p.Signature != nil {
			field(&b, "Stepping", fmt.Sprint(p.Signature.Stepping))
			field(&b, "Model", fmt.Sprint(p.Signature.Model))
			field(&b, "Family", fmt.Sprint(p.Signature.Family))
		} else {
			field(&b, "Signature", failColor.Sprint("unsupported"))
		}
		field(&b, "Architecture", p.Architecture.String())
	}

	c := r.Clock
	if c.BaseMHz != nil {
		field(&b, "Base clock speed", fmt.Sprintf("%.1f MHz (estimated, x%d)", *c.BaseMHz, c.Multiplier))
	} else {
		field(&b, "Base clock speed", failure(c.Error))
	}
	if c.MaxMHz != nil {
		field(&b, "Maximum clock speed", fmt.Sprintf("%.1f GHz", MHzToGHz(*c.MaxMHz)))
	} else {
		field(&b, "Maximum clock speed", failure(c.Error))
	}

	if r.Processor != nil {
		field(&b, "Cores", fmt.Sprint(r.Processor.Cores))
		field(&b, "Threads", fmt.Sprint(r.Processor.Threads))
	}

	b.WriteString("\n\n " + headerColor.Sprint("[OS INFO]") + " ========================================\n\n")
	field(&b, "Operating System", r.OS.Label)
	if r.OS.Details != "" {
		field(&b, "Details", r.OS.Details)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, " %s : %s\n", labelColor.Sprint(label), value)
}

// failure renders a failed query as its kind, never as a number
func failure(info *sysinfo.ErrorInfo) string {
	if info == nil || info.Kind == "" {
		return failColor.Sprint("unavailable")
	}
	switch info.Kind {
	case "unsupported", "unavailable", "malformed":
		return failColor.Sprint(info.Kind)
	}
	return failColor.Sprint("unavailable")
}

// MHzToGHz converts a clock reading for display
func MHzToGHz(mhz uint32) float64 {
	return float64(mhz) / 1000
}
