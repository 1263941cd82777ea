package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/fractal/demo"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Width(14)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(30)
	sizeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Width(8)
	paramStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// list prints one row per demo: name, title, size, whether it exports SVG,
// and its parameters with their current values.
func list(w io.Writer) error {
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Inherit(nameStyle).Render("NAME"),
		headerStyle.Inherit(titleStyle).Render("TITLE"),
		headerStyle.Inherit(sizeStyle).Render("SIZE"),
		headerStyle.Inherit(kindStyle).Render("KIND"),
		headerStyle.Render("PARAMETERS"),
	)}
	for _, name := range demo.Sorted() {
		d, err := demo.New(name)
		if err != nil {
			return err
		}
		kind := "raster"
		if _, ok := d.(demo.Vector); ok {
			kind = "vector"
		}
		var params []string
		for _, p := range d.Params() {
			params = append(params, p.Name+"="+p.String())
		}
		s := d.Size()
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(name),
			titleStyle.Render(d.Title()),
			sizeStyle.Render(fmt.Sprintf("%dx%d", s.X, s.Y)),
			kindStyle.Render(kind),
			paramStyle.Render(strings.Join(params, " ")),
		))
	}
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return err
}
