package entries

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/errors"
)

type EntryDeleteCmd struct {
	User string `help:"Username to act as." short:"u"`
	ID   string `help:"Entry id." arg:""`
	Yes  bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *EntryDeleteCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Authenticate(c.User)
	if err != nil {
		return err
	}

	entry, err := ctx.Store.GetEntry(c.ID)
	if err != nil {
		return err
	}
	if entry.UserID != session.UserID {
		return fmt.Errorf("%w: entry %s", errors.ErrNotFound, c.ID)
	}

	ok, err := cli.Confirm(fmt.Sprintf("Delete entry from %s? This cannot be undone.",
		entry.CreatedAt.Format("2006-01-02")), c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := ctx.Store.DeleteEntry(c.ID); err != nil {
		return err
	}

	fmt.Println("Entry deleted.")
	return nil
}
