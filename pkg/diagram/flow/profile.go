package flow

// Profile is one of the two fixed presentation variants. Sizes are in pixels
// for SVG; the Text fields are cell counts for the terminal sink.
type Profile struct {
	Name      string
	Padding   float64
	RowGap    float64
	BoxPadX   float64
	BoxPadY   float64
	IconSize  float64
	IconGap   float64
	LabelSize float64
	NoteSize  float64
	TitleSize float64
	ArrowLen  float64

	TextPadV    int
	TextPadH    int
	TextRowGap  int
	HTMLPadding string
	HTMLGap     string
	HTMLBox     string
	HTMLIcon    string
	HTMLNote    string
	HTMLTitle   string
}

var (
	// Compact is the default profile.
	Compact = Profile{
		Name: "compact", Padding: 16, RowGap: 12, BoxPadX: 8, BoxPadY: 4,
		IconSize: 16, IconGap: 8, LabelSize: 13, NoteSize: 10, TitleSize: 13, ArrowLen: 16,
		TextPadV: 0, TextPadH: 1, TextRowGap: 0,
		HTMLPadding: "p-4", HTMLGap: "gap-3", HTMLBox: "px-2 py-1", HTMLIcon: "h-4 w-4",
		HTMLNote: "text-[10px]", HTMLTitle: "muted",
	}
	// Large is selected by [Options.Large].
	Large = Profile{
		Name: "large", Padding: 24, RowGap: 16, BoxPadX: 8, BoxPadY: 8,
		IconSize: 24, IconGap: 8, LabelSize: 15, NoteSize: 12, TitleSize: 17, ArrowLen: 24,
		TextPadV: 1, TextPadH: 2, TextRowGap: 1,
		HTMLPadding: "p-6", HTMLGap: "gap-4", HTMLBox: "p-2", HTMLIcon: "h-6 w-6",
		HTMLNote: "text-xs", HTMLTitle: "lead",
	}
)

// ProfileFor returns [Large] when large is set, otherwise [Compact].
func ProfileFor(large bool) Profile {
	if large {
		return Large
	}
	return Compact
}
