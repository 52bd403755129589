package styles

import (
	"fmt"
	"maps"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"

	"github.com/kyaoi/mdstyle/internal/catalog"
)

// Variable is the name of a visual variable written to the page root.
type Variable string

const (
	FontFamily      Variable = "--font-family"
	FontSize        Variable = "--font-size"
	FontColor       Variable = "--font-color"
	ContainerWidth  Variable = "--container-width"
	BackgroundColor Variable = "--background-color"
)

// Names lists the visual variables in their fixed order.
var Names = []Variable{FontFamily, FontSize, FontColor, ContainerWidth, BackgroundColor}

var slotVariables = map[catalog.Slot]Variable{
	catalog.FontFamily:      FontFamily,
	catalog.FontSize:        FontSize,
	catalog.FontColor:       FontColor,
	catalog.ContentWidth:    ContainerWidth,
	catalog.BackgroundColor: BackgroundColor,
}

// Variables maps each visual variable to its literal value.
type Variables map[Variable]string

// Derive projects a selection onto the five visual variables. Values are the
// options' values, untouched.
func Derive(state catalog.SelectionState) Variables {
	vars := make(Variables, len(Names))
	for slot, name := range slotVariables {
		vars[name] = state.Get(slot).Value
	}
	return vars
}

// Declarations renders the variables as ordered CSS declarations.
func (v Variables) Declarations() string {
	var b strings.Builder
	for _, name := range Names {
		value, ok := v[name]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s: %s;", name, value)
	}
	return b.String()
}

var cssMinifier = func() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	return m
}()

// Stylesheet renders the variables as a minified :root rule.
func (v Variables) Stylesheet() (string, error) {
	out, err := cssMinifier.String("text/css", ":root { "+v.Declarations()+" }")
	if err != nil {
		return "", fmt.Errorf("minify stylesheet: %w", err)
	}
	return out, nil
}

// Root is the page's visual root. Apply is its only writer.
type Root struct {
	vars     Variables
	revision int
}

// NewRoot creates an empty page root.
func NewRoot() *Root {
	return &Root{vars: make(Variables, len(Names))}
}

// Apply writes the variables derived from state onto the root, replacing any
// prior values, and returns them.
func (r *Root) Apply(state catalog.SelectionState) Variables {
	vars := Derive(state)
	maps.Copy(r.vars, vars)
	r.revision++
	return vars
}

// Get returns the current value of a variable.
func (r *Root) Get(name Variable) (string, bool) {
	value, ok := r.vars[name]
	return value, ok
}

// Variables returns a copy of the current variables.
func (r *Root) Variables() Variables {
	return maps.Clone(r.vars)
}

// Revision counts the writes made through Apply.
func (r *Root) Revision() int {
	return r.revision
}
