package dashboard

import (
	pkgerrors "github.com/zachbowman/brandboard-backend/pkg/errors"
)

// PanelView is one dashboard panel served on its own. EmptyMessage is set
// only when the panel has nothing to show.
type PanelView struct {
	Key          string `json:"key"`
	Title        string `json:"title"`
	Data         any    `json:"data"`
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

type panelDef struct {
	title        string
	emptyMessage string
	// select returns the panel payload and whether it is empty.
	selector func(*ViewModel) (any, bool)
}

// panelRegistry maps panel keys to their definitions. Adding a panel means
// adding a row here; routing stays untouched.
var panelRegistry = map[string]panelDef{
	"profit-loss": {
		title:        "Profit & Loss",
		emptyMessage: "No financial data recorded yet",
		selector: func(vm *ViewModel) (any, bool) {
			return vm.ProfitLoss, len(vm.Chart) == 0
		},
	},
	"revenue-chart": {
		title:        "Revenue",
		emptyMessage: "No revenue history to chart",
		selector: func(vm *ViewModel) (any, bool) {
			return vm.Chart, len(vm.Chart) == 0
		},
	},
	"ad-campaigns": {
		title:        "Ad Campaigns",
		emptyMessage: "No campaigns running",
		selector: func(vm *ViewModel) (any, bool) {
			return vm.Campaigns, len(vm.Campaigns) == 0
		},
	},
	"ai-agents": {
		title:        "AI Agents",
		emptyMessage: "No agents configured",
		selector: func(vm *ViewModel) (any, bool) {
			return vm.Agents, len(vm.Agents) == 0
		},
	},
	"product-market-fit": {
		title:        "Product Market Fit",
		emptyMessage: "Product market fit has not been measured",
		selector: func(vm *ViewModel) (any, bool) {
			return vm.ProductMarketFit, !vm.ProductMarketFit.Available
		},
	},
	"tasks": {
		title:        "Tasks",
		emptyMessage: "No open tasks",
		selector: func(vm *ViewModel) (any, bool) {
			return vm.Tasks, len(vm.Tasks.All) == 0
		},
	},
	"meetings": {
		title:        "Meetings",
		emptyMessage: "Nothing scheduled",
		selector: func(vm *ViewModel) (any, bool) {
			return vm.Meetings, len(vm.Meetings) == 0
		},
	},
}

// PanelKeys lists the registered panel keys; handy for discovery responses
// and tests.
func PanelKeys() []string {
	keys := make([]string, 0, len(panelRegistry))
	for key := range panelRegistry {
		keys = append(keys, key)
	}
	return keys
}

// Panel extracts a single panel from a composed view model.
func Panel(vm *ViewModel, key string) (*PanelView, error) {
	def, ok := panelRegistry[key]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown dashboard panel")
	}
	data, empty := def.selector(vm)
	panel := &PanelView{Key: key, Title: def.title, Data: data}
	if empty {
		panel.EmptyMessage = def.emptyMessage
	}
	return panel, nil
}
