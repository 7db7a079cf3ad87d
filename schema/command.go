package schema

// CommandKind tags the command variant.
type CommandKind string

const (
	// CommandAddTab adds a fresh scratch tab to a node.
	CommandAddTab CommandKind = "tab.add"
	// CommandCloseTab removes a tab, recreating the default tab if the
	// tree would otherwise stay empty.
	CommandCloseTab CommandKind = "tab.close"
	// CommandRename opens the rename dialog for a tab.
	CommandRename CommandKind = "menu.rename"
	// CommandSave persists a tab's content through the saver collaborator.
	CommandSave CommandKind = "menu.save"
	// CommandShare uploads a tab's content through the sharer collaborator.
	CommandShare CommandKind = "menu.share"
)

// Command is a deferred structural UI action, queued during the render pass
// and applied afterwards. Node and Tab are positional references captured at
// emission time; processors re-validate them before indexing since earlier
// commands in the same drain may have shifted positions.
type Command struct {
	Kind CommandKind `json:"kind"`
	Node NodeIndex   `json:"node"`
	Tab  TabIndex    `json:"tab"`
}

// AddTabCommand targets the node whose add button was clicked.
func AddTabCommand(node NodeIndex) Command {
	return Command{Kind: CommandAddTab, Node: node}
}

// CloseTabCommand targets the tab whose close button was clicked.
func CloseTabCommand(node NodeIndex, tab TabIndex) Command {
	return Command{Kind: CommandCloseTab, Node: node, Tab: tab}
}

// RenameCommand targets the tab selected in the context menu.
func RenameCommand(node NodeIndex, tab TabIndex) Command {
	return Command{Kind: CommandRename, Node: node, Tab: tab}
}

// SaveCommand targets the tab selected in the context menu.
func SaveCommand(node NodeIndex, tab TabIndex) Command {
	return Command{Kind: CommandSave, Node: node, Tab: tab}
}

// ShareCommand targets the tab selected in the context menu.
func ShareCommand(node NodeIndex, tab TabIndex) Command {
	return Command{Kind: CommandShare, Node: node, Tab: tab}
}
