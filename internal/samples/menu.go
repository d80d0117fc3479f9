/*
Package samples holds example trees: a chat-bot menu, built declaratively as
well as imperatively, and a generic tree built with a mix of both styles.
*/
package samples

import (
	"github.com/lifestreamy/TreeBuilder/tree"
)

// GoBack terminates every menu.
const GoBack = "Go Back"

var (
	mainMenu = []string{
		"Open Info Menu",        // 0
		"Friends Actions",       // 1
		"Notifications Actions", // 2
		"Support Developer",     // 3
	}
	infoMenu      = []string{"See Your Info", "Change Your Info", GoBack}
	friendsMenu   = []string{"Public friends", "Local friends", GoBack}
	publicFriends = []string{"My friend list", "Friend requests", "Send friend request", "Remove a friend",
		"See friend's profile information", "See friend's wishlist", GoBack}
	localFriends = []string{"My local friends", "Create a local friend", "Share my local friend",
		"See local friend profile info", GoBack}
	notificationsMenu = []string{
		"My active notifications",            // 0
		"Bot notifications",                  // 1
		"Single friend reminders settings",   // 2
		"Multiple friend reminders settings", // 3
		GoBack,
	}
	singleReminders = []string{"My active notifications", "Add a notification", "Change a notification",
		"Delete a notification", GoBack}
	multipleReminders = []string{"My active notifications", "Modify all notifications",
		"Add all friends' birthdays to notifications", "Remove all notifications", GoBack}
	supportMenu = []string{"Share this bot", "Donate", GoBack}
)

// Menu builds the menu declaratively. Every menu entry without a sub-menu
// gets a single child "Go Back", as the final step of any menu navigation.
func Menu() (*tree.Tree[string], error) {
	return tree.Build(func(b *tree.Builder[string]) {
		b.Name("Main Menu")
		b.Root("Menu")
		b.EmptyNodes(mainMenu...)
		b.AtPath(tree.Path{0}, func(c *tree.NodeContext[string]) {
			c.EmptyNodes(infoMenu...)
			goBackBelow(c, 2)
		})
		b.AtPath(tree.Path{1}, func(c *tree.NodeContext[string]) {
			c.EmptyNodes(friendsMenu...)
			c.AtRelativePath(tree.Path{0}, func(c *tree.NodeContext[string]) {
				c.EmptyNodes(publicFriends...)
				goBackBelow(c, 6)
			})
			c.AtRelativePath(tree.Path{1}, func(c *tree.NodeContext[string]) {
				c.EmptyNodes(localFriends...)
				goBackBelow(c, 4)
			})
		})
		b.AtPath(tree.Path{2}, func(c *tree.NodeContext[string]) {
			c.EmptyNodes(notificationsMenu...)
			goBackBelow(c, 2)
			c.AtRelativePath(tree.Path{2}, func(c *tree.NodeContext[string]) {
				c.EmptyNodes(singleReminders...)
				goBackBelow(c, 4)
			})
			c.AtRelativePath(tree.Path{3}, func(c *tree.NodeContext[string]) {
				c.EmptyNodes(multipleReminders...)
				goBackBelow(c, 4)
			})
		})
		b.AtPath(tree.Path{3}, func(c *tree.NodeContext[string]) {
			c.EmptyNodes(supportMenu...)
			goBackBelow(c, 2)
		})
	})
}

// goBackBelow appends "Go Back" to the first n children of the context node.
func goBackBelow(c *tree.NodeContext[string], n int) {
	for i := 0; i < n; i++ {
		c.AtRelativePath(tree.Path{i}, func(c *tree.NodeContext[string]) {
			c.EmptyNode(GoBack)
		})
	}
}

// MenuImperative builds the same menu as Menu, by a sequence of calls on
// the tree.
func MenuImperative() *tree.Tree[string] {
	t := tree.New(tree.WithName[string]("Main Menu"), tree.WithRootName[string]("Menu"))
	t.AppendEmptyNamedToPaths(tree.NamesAt(tree.RootPath, mainMenu...))
	t.AppendEmptyNamedToPaths(
		tree.NamesAt(tree.Path{0}, infoMenu...),
		tree.NamesAt(tree.Path{1}, friendsMenu...),
		tree.NamesAt(tree.Path{2}, notificationsMenu...),
		tree.NamesAt(tree.Path{3}, supportMenu...),
	)
	t.AppendEmptyNamedToPathsStrict(
		tree.NamesAt(tree.Path{1, 0}, publicFriends...),
		tree.NamesAt(tree.Path{1, 1}, localFriends...),
		tree.NamesAt(tree.Path{2, 2}, singleReminders...),
		tree.NamesAt(tree.Path{2, 3}, multipleReminders...),
	)
	for _, leaf := range t.Leaves() {
		if leaf.Depth() >= 2 && leaf.Name() != GoBack {
			t.CursorSet(leaf.Path()...).CursorAppendEmptyNodes(GoBack)
		}
	}
	t.CursorMoveToRoot()
	return t
}
