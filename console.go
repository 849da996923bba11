package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// console prints status lines. Styles apply only on a terminal so redirected
// output carries the bare text.
type console struct {
	w      io.Writer
	styled bool
}

func newConsole(w io.Writer) *console {
	c := &console{w: w}
	if f, ok := w.(*os.File); ok {
		c.styled = term.IsTerminal(int(f.Fd()))
	}
	return c
}

func (c *console) line(style lipgloss.Style, text string) {
	if c.styled && text != "" {
		text = style.Render(text)
	}
	fmt.Fprintln(c.w, text)
}

func (c *console) println(text string) {
	fmt.Fprintln(c.w, text)
}

func (c *console) created(name string) {
	c.line(createdStyle, "Created "+name)
}

func (c *console) success(text string) {
	c.line(successStyle, text)
}

func (c *console) fail(text string) {
	c.line(failStyle, text)
}
