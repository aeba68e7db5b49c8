package controlsfx

import "github.com/sampler-labs/sampler/internal/sample"

type HelloActionGroup struct{ sample.Base }

func (*HelloActionGroup) Name() string { return "Action Group" }
func (*HelloActionGroup) Description() string {
	return "Groups related actions so they render as one menu or toolbar button."
}
func (*HelloActionGroup) Content() string {
	return "[File ▾] New | Open | Save\n[Edit ▾] Cut | Copy | Paste"
}

type HelloAutoComplete struct{ sample.Base }

func (*HelloAutoComplete) Name() string { return "AutoComplete TextField" }
func (*HelloAutoComplete) Description() string {
	return "Suggests completions as the user types."
}
func (*HelloAutoComplete) Content() string { return "Country: [Ger|        ]\n  > Germany" }

type HelloTextFields struct{ sample.Base }

func (*HelloTextFields) Name() string { return "TextFields" }
func (*HelloTextFields) Description() string {
	return "Text fields with clear buttons and left/right decorations."
}
func (*HelloTextFields) Content() string { return "[🔍 search...     ✕]" }

type HelloBorders struct{ sample.Base }

func (*HelloBorders) Name() string    { return "Borders" }
func (*HelloBorders) Content() string { return "┌ Title ─────┐\n│   content  │\n└────────────┘" }

type HelloBreadCrumbBar struct{ sample.Base }

func (*HelloBreadCrumbBar) Name() string    { return "BreadCrumbBar" }
func (*HelloBreadCrumbBar) Content() string { return "Home › Library › Samples" }

type HelloSegmentedButton struct{ sample.Base }

func (*HelloSegmentedButton) Name() string    { return "SegmentedButton" }
func (*HelloSegmentedButton) Content() string { return "( Day | Week | Month )" }

type HelloCheckComboBox struct{ sample.Base }

func (*HelloCheckComboBox) Name() string    { return "CheckComboBox" }
func (*HelloCheckComboBox) Content() string { return "[x] Red  [ ] Green  [x] Blue" }

type HelloCheckListView struct{ sample.Base }

func (*HelloCheckListView) Name() string    { return "CheckListView" }
func (*HelloCheckListView) Content() string { return "[x] Item 1\n[ ] Item 2\n[x] Item 3" }

type HelloRating struct{ sample.Base }

func (*HelloRating) Name() string    { return "Rating" }
func (*HelloRating) Content() string { return "★★★☆☆" }

type HelloRangeSlider struct{ sample.Base }

func (*HelloRangeSlider) Name() string    { return "RangeSlider" }
func (*HelloRangeSlider) Content() string { return "0 ──●━━━━━●── 100" }

// HelloDecorator is kept out of listings until the decoration API settles.
type HelloDecorator struct{ sample.Base }

func (*HelloDecorator) Name() string  { return "Decorator" }
func (*HelloDecorator) Visible() bool { return false }
