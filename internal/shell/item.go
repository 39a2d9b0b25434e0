package shell

import (
	"fmt"
)

// IconRef names an icon. The controller treats it as opaque display data.
type IconRef string

// ItemDefinition declares one navigation entry. Label and icon are already
// resolved by the caller.
type ItemDefinition struct {
	Label  string
	Icon   IconRef
	PageID string
}

// Definitions holds the declared primary and secondary entries in order.
type Definitions struct {
	Primary   []ItemDefinition
	Secondary []ItemDefinition
}

// Validate reports empty or duplicate page identifiers across both collections.
func (d Definitions) Validate() error {
	seen := make(map[string]string, len(d.Primary)+len(d.Secondary))

	check := func(group string, defs []ItemDefinition) error {
		for i, def := range defs {
			if def.PageID == "" {
				return fmt.Errorf("%w: %s item %d", ErrEmptyPageID, group, i)
			}
			if prev, ok := seen[def.PageID]; ok {
				return fmt.Errorf("%w: %q declared in %s and %s", ErrDuplicatePage, def.PageID, prev, group)
			}
			seen[def.PageID] = group
		}
		return nil
	}

	if err := check("primary", d.Primary); err != nil {
		return err
	}
	return check("secondary", d.Secondary)
}

// Len returns the total number of declared entries.
func (d Definitions) Len() int {
	return len(d.Primary) + len(d.Secondary)
}

// NavigationItem is an entry on the navigation surface.
type NavigationItem struct {
	Label    string
	Icon     IconRef
	PageID   string
	Selected bool
}

func newItems(defs []ItemDefinition) []NavigationItem {
	items := make([]NavigationItem, 0, len(defs))
	for _, def := range defs {
		items = append(items, NavigationItem{
			Label:  def.Label,
			Icon:   def.Icon,
			PageID: def.PageID,
		})
	}
	return items
}

func cloneItems(items []NavigationItem) []NavigationItem {
	if items == nil {
		return nil
	}
	out := make([]NavigationItem, len(items))
	copy(out, items)
	return out
}
