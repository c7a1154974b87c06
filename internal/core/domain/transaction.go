package domain

// Action is what a transaction item does to the system.
type Action uint8

const (
	// ActionDowngrade replaces an installed package with a lower version.
	ActionDowngrade Action = iota
	// ActionInstall installs a package alongside existing versions.
	ActionInstall
	// ActionRemove removes an installed package.
	ActionRemove
)

func (a Action) String() string {
	switch a {
	case ActionDowngrade:
		return "downgrade"
	case ActionInstall:
		return "install"
	case ActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// TransactionItem is a single planned change.
type TransactionItem struct {
	Action   Action
	Package  *Package
	Replaces *Package
}

// Transaction is an ordered plan of changes. It is never executed by sack.
type Transaction struct {
	Items []TransactionItem

	// Skipped lists installed packages that matched but are already at their lowest available version.
	Skipped []*Package
}

// Add appends an item to the plan.
func (t *Transaction) Add(action Action, pkg, replaces *Package) {
	t.Items = append(t.Items, TransactionItem{Action: action, Package: pkg, Replaces: replaces})
}

// Empty reports whether the plan has no items.
func (t *Transaction) Empty() bool {
	return len(t.Items) == 0
}
