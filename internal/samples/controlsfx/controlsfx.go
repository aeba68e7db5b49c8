// Package controlsfx is the bundled sample project. Importing it registers
// the ControlsFX provider and its sample types with the process-wide
// registries.
package controlsfx

import (
	"github.com/sampler-labs/sampler/internal/provider"
	"github.com/sampler-labs/sampler/internal/registry"
	"github.com/sampler-labs/sampler/internal/sample"
)

const (
	ProjectName = "ControlsFX"
	Namespace   = "org.controlsfx.samples"
	WelcomePage = Namespace + ".HelloControlsFX"
)

func init() {
	provider.Register(provider.Metadata{
		Name:        ProjectName,
		Namespace:   Namespace,
		WelcomePage: WelcomePage,
		Version:     "8.40.0",
		Description: "High quality UI controls and other tools",
	})

	registry.Register(WelcomePage, (*sample.Empty)(nil))
	registry.Register(Namespace+".ControlSample", (*sample.Sample)(nil))

	registry.Register(Namespace+".actions.HelloActionGroup", (*HelloActionGroup)(nil))
	registry.Register(Namespace+".textfields.HelloAutoComplete", (*HelloAutoComplete)(nil))
	registry.Register(Namespace+".textfields.HelloTextFields", (*HelloTextFields)(nil))
	registry.Register(Namespace+".HelloBorders", (*HelloBorders)(nil))
	registry.Register(Namespace+".button.HelloBreadCrumbBar", (*HelloBreadCrumbBar)(nil))
	registry.Register(Namespace+".button.HelloSegmentedButton", (*HelloSegmentedButton)(nil))
	registry.Register(Namespace+".checked.HelloCheckComboBox", (*HelloCheckComboBox)(nil))
	registry.Register(Namespace+".checked.HelloCheckListView", (*HelloCheckListView)(nil))
	registry.Register(Namespace+".HelloRating", (*HelloRating)(nil))
	registry.Register(Namespace+".HelloRangeSlider", (*HelloRangeSlider)(nil))
	registry.Register(Namespace+".HelloDecorator", (*HelloDecorator)(nil))
}

// Candidates returns the type names the project ships. Some of them are not
// compiled into every build; those fail to resolve and are skipped.
func Candidates() []string {
	return []string{
		Namespace + ".actions.HelloActionGroup",
		Namespace + ".actions.HelloActionProxy",
		Namespace + ".textfields.HelloAutoComplete",
		Namespace + ".HelloBorders",
		Namespace + ".button.HelloBreadCrumbBar",
		Namespace + ".button.HelloButtonBar",
		Namespace + ".checked.HelloCheckComboBox",
		Namespace + ".checked.HelloCheckListView",
		Namespace + ".checked.HelloCheckTreeView",
		Namespace + ".HelloDecorator",
		Namespace + ".dialogs.HelloDialogs",
		Namespace + ".HelloGridView",
		Namespace + ".HelloRangeSlider",
		Namespace + ".HelloRating",
		Namespace + ".button.HelloSegmentedButton",
		Namespace + ".HelloSpreadsheetView",
		Namespace + ".textfields.HelloTextFields",
		WelcomePage,
		Namespace + ".ControlSample",
	}
}
