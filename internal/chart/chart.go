// Package chart draws a BMI on the 1-49 ASCII scale and prints the matching
// status tier and advice.
package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Utility-Gods/bmichart/internal/bmi"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ScaleMax is the rightmost position on the chart.
const ScaleMax = 49

// The zone labels are fixed text and must stay in line with the tier
// boundaries in package bmi.
const (
	header = "\nBMI Chart\n" +
		"|      Under      |Normal|Over|      Obese      |\n" +
		"-------------------------------------------------\n"
	scale = "1        10        20         30       40      49\n"
)

var tierColors = map[bmi.Tier]lipgloss.Color{
	bmi.Underweight:   lipgloss.Color("12"),
	bmi.Normal:        lipgloss.Color("10"),
	bmi.Overweight:    lipgloss.Color("11"),
	bmi.Obese:         lipgloss.Color("208"),
	bmi.MorbidlyObese: lipgloss.Color("9"),
}

// Renderer writes charts and status blocks to a single output.
type Renderer struct {
	out   io.Writer
	style *lipgloss.Renderer
}

// NewRenderer binds a renderer to w. Styling follows the colour capabilities
// of w; color=false disables it entirely.
func NewRenderer(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{out: w, style: r}
}

// PointerOffset returns how many spaces precede the caret for v. Values that
// round past the end of the scale are pinned to the last column; values that
// round below 1 are pinned to the first.
func PointerOffset(v float64) int {
	p := math.RoundToEven(v)
	switch {
	case math.IsNaN(p) || p < 1:
		return 0
	case p > ScaleMax:
		return ScaleMax - 1
	default:
		return int(p) - 1
	}
}

// Chart returns the header, pointer line and scale labels for v.
func (r *Renderer) Chart(v float64) string {
	caret := r.style.NewStyle().Bold(true).Foreground(tierColors[bmi.Classify(v)]).Render("^")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(strings.Repeat(" ", PointerOffset(v)))
	b.WriteString(caret)
	b.WriteString("\n")
	b.WriteString(scale)
	return b.String()
}

// Status returns the BMI, its tier and the advice paragraph.
func (r *Renderer) Status(v float64) string {
	tier := bmi.Classify(v)
	name := r.style.NewStyle().Bold(true).Foreground(tierColors[tier]).Render(tier.String())
	return fmt.Sprintf("\nYour patient's BMI is: %.2f\nThis is generally considered to be %s.\nAdvise the patient of the following:\n%s\n\n",
		v, name, tier.Advice())
}

// Render writes the chart followed by the status block.
func (r *Renderer) Render(v float64) error {
	if _, err := io.WriteString(r.out, r.Chart(v)+r.Status(v)); err != nil {
		return fmt.Errorf("error writing chart: %w", err)
	}
	return nil
}
