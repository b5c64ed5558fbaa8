package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color interface {
	Index() int
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	index         int
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Index() int {
	return c.index
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction(text) + fmt.Sprintf("(%s)", c.name)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...) + fmt.Sprintf("(%s)", c.name)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	index:         0,
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Green = &colorStruct{
	index:         1,
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	index:         2,
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Yellow = &colorStruct{
	index:         3,
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// All returns the closed color set in index order.
func All() []Color {
	return []Color{Red, Green, Blue, Yellow}
}

func ByName(name string) (Color, error) {
	for _, c := range All() {
		if c.Name() == strings.ToLower(name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("invalid color '%s'", name)
}
