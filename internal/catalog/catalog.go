package catalog

import "slices"

// Option is a single selectable value of a catalog slot.
type Option struct {
	Value     string `yaml:"value" validate:"required"`
	Label     string `yaml:"label" validate:"required"`
	ClassName string `yaml:"class_name,omitempty"`
}

// Slot identifies one of the five styling choices.
type Slot int

const (
	FontFamily Slot = iota
	FontSize
	FontColor
	BackgroundColor
	ContentWidth
)

// Slots lists every slot in display order.
var Slots = []Slot{FontFamily, FontSize, FontColor, BackgroundColor, ContentWidth}

// Title returns the human readable name of the slot.
func (s Slot) Title() string {
	switch s {
	case FontFamily:
		return "Font"
	case FontSize:
		return "Font size"
	case FontColor:
		return "Font color"
	case BackgroundColor:
		return "Background color"
	case ContentWidth:
		return "Content width"
	default:
		return "unknown"
	}
}

func (s Slot) String() string {
	return s.Title()
}

// SelectionState holds the chosen option of every slot.
type SelectionState struct {
	FontFamilyOption Option
	FontSizeOption   Option
	FontColor        Option
	BackgroundColor  Option
	ContentWidth     Option
}

// Get returns the option stored in the given slot.
func (s SelectionState) Get(slot Slot) Option {
	switch slot {
	case FontFamily:
		return s.FontFamilyOption
	case FontSize:
		return s.FontSizeOption
	case FontColor:
		return s.FontColor
	case BackgroundColor:
		return s.BackgroundColor
	case ContentWidth:
		return s.ContentWidth
	default:
		return Option{}
	}
}

// With returns a copy of the state with the slot replaced by opt.
func (s SelectionState) With(slot Slot, opt Option) SelectionState {
	switch slot {
	case FontFamily:
		s.FontFamilyOption = opt
	case FontSize:
		s.FontSizeOption = opt
	case FontColor:
		s.FontColor = opt
	case BackgroundColor:
		s.BackgroundColor = opt
	case ContentWidth:
		s.ContentWidth = opt
	}
	return s
}

// Catalog is the fixed set of options offered for each slot. The first entry
// of every list is the default.
type Catalog struct {
	FontFamilies     []Option `yaml:"font_families" validate:"required,min=1,unique=Value,dive"`
	FontSizes        []Option `yaml:"font_sizes" validate:"required,min=1,unique=Value,dive"`
	FontColors       []Option `yaml:"font_colors" validate:"required,min=1,unique=Value,dive"`
	BackgroundColors []Option `yaml:"background_colors" validate:"required,min=1,unique=Value,dive"`
	ContentWidths    []Option `yaml:"content_widths" validate:"required,min=1,unique=Value,dive"`
}

var (
	fontFamilyOptions = []Option{
		{Value: "Open Sans", Label: "Open Sans", ClassName: "open-sans"},
		{Value: "Ubuntu", Label: "Ubuntu", ClassName: "ubuntu"},
		{Value: "Cormorant Garamond", Label: "Cormorant Garamond", ClassName: "cormorant-garamond"},
		{Value: "Days One", Label: "Days One", ClassName: "days-one"},
		{Value: "Merriweather", Label: "Merriweather", ClassName: "merriweather"},
	}
	fontSizeOptions = []Option{
		{Value: "18px", Label: "18px", ClassName: "font-size-18"},
		{Value: "24px", Label: "24px", ClassName: "font-size-24"},
		{Value: "38px", Label: "38px", ClassName: "font-size-38"},
	}
	fontColors = []Option{
		{Value: "#000", Label: "Black", ClassName: "font-black"},
		{Value: "#fff", Label: "White", ClassName: "font-white"},
		{Value: "#C4C4C4", Label: "Gray", ClassName: "font-gray"},
		{Value: "#FEAFE8", Label: "Pink", ClassName: "font-pink"},
		{Value: "#FD24AF", Label: "Fuchsia", ClassName: "font-fuchsia"},
		{Value: "#FFC802", Label: "Yellow", ClassName: "font-yellow"},
		{Value: "#80D994", Label: "Green", ClassName: "font-green"},
		{Value: "#6FC1FD", Label: "Blue", ClassName: "font-blue"},
		{Value: "#5F29F8", Label: "Purple", ClassName: "font-purple"},
	}
	backgroundColors = []Option{
		{Value: "#fff", Label: "White", ClassName: "bg-white"},
		{Value: "#000", Label: "Black", ClassName: "bg-black"},
		{Value: "#C4C4C4", Label: "Gray", ClassName: "bg-gray"},
		{Value: "#FFC2F5", Label: "Pink", ClassName: "bg-pink"},
		{Value: "#FFE5AE", Label: "Yellow", ClassName: "bg-yellow"},
		{Value: "#C8F3D4", Label: "Green", ClassName: "bg-green"},
		{Value: "#D1E9FF", Label: "Blue", ClassName: "bg-blue"},
		{Value: "#EAD7FF", Label: "Purple", ClassName: "bg-purple"},
	}
	contentWidths = []Option{
		{Value: "800px", Label: "Wide", ClassName: "width-wide"},
		{Value: "600px", Label: "Narrow", ClassName: "width-narrow"},
	}
)

// DefaultArticleState is the default selection of the built-in catalog.
var DefaultArticleState = Builtin().Default()

// Builtin returns a fresh copy of the built-in catalog.
func Builtin() Catalog {
	return Catalog{
		FontFamilies:     slices.Clone(fontFamilyOptions),
		FontSizes:        slices.Clone(fontSizeOptions),
		FontColors:       slices.Clone(fontColors),
		BackgroundColors: slices.Clone(backgroundColors),
		ContentWidths:    slices.Clone(contentWidths),
	}
}

// Options returns the ordered options of a slot.
func (c Catalog) Options(slot Slot) []Option {
	switch slot {
	case FontFamily:
		return c.FontFamilies
	case FontSize:
		return c.FontSizes
	case FontColor:
		return c.FontColors
	case BackgroundColor:
		return c.BackgroundColors
	case ContentWidth:
		return c.ContentWidths
	default:
		return nil
	}
}

// Default composes the selection made of the first option of every slot.
func (c Catalog) Default() SelectionState {
	var state SelectionState
	for _, slot := range Slots {
		if opts := c.Options(slot); len(opts) > 0 {
			state = state.With(slot, opts[0])
		}
	}
	return state
}

// IndexOf reports the position of opt within the slot, comparing by value.
// It returns -1 when the option is not part of the slot.
func (c Catalog) IndexOf(slot Slot, opt Option) int {
	return slices.IndexFunc(c.Options(slot), func(o Option) bool {
		return o.Value == opt.Value
	})
}

// Contains reports whether every slot of state holds an option of this catalog.
func (c Catalog) Contains(state SelectionState) bool {
	for _, slot := range Slots {
		if c.IndexOf(slot, state.Get(slot)) < 0 {
			return false
		}
	}
	return true
}
