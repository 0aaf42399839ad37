package entries

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/errors"
)

type EntryShowCmd struct {
	User string `help:"Username to act as." short:"u"`
	ID   string `help:"Entry id." arg:""`
}

func (c *EntryShowCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Authenticate(c.User)
	if err != nil {
		return err
	}

	entry, err := ctx.Store.GetEntry(c.ID)
	if err != nil {
		return err
	}
	// Entries are private; another user's entry reads as missing.
	if entry.UserID != session.UserID {
		return fmt.Errorf("%w: entry %s", errors.ErrNotFound, c.ID)
	}

	title := entry.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Printf("%s\n", title)
	fmt.Printf("Written: %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	if entry.Mood != "" {
		fmt.Printf("Mood: %s\n", entry.Mood)
	}
	if entry.Important {
		fmt.Println("Marked important.")
	}
	fmt.Println()
	fmt.Println(entry.Content)

	return nil
}
