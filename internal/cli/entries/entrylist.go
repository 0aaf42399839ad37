package entries

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/cli"
)

type EntryListCmd struct {
	User string `help:"Username to act as." short:"u"`
}

func (c *EntryListCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Authenticate(c.User)
	if err != nil {
		return err
	}

	summaries, err := ctx.Store.ListEntries(session.UserID)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	if len(summaries) == 0 {
		fmt.Println("No entries yet. Write one with 'daybook entry add'.")
		return nil
	}

	for _, sum := range summaries {
		star := " "
		if sum.Important {
			star = "*"
		}
		title := sum.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%s %s  %-20s  %-10s  %s\n",
			star, sum.CreatedAt.Format("2006-01-02 15:04"), title, sum.Mood, sum.Preview)
		fmt.Printf("    id: %s\n", sum.ID)
	}

	return nil
}
