package entries

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/models"
)

type EntryAddCmd struct {
	User      string `help:"Username to act as." short:"u"`
	Title     string `help:"Entry title (optional)."`
	Mood      string `help:"Mood note (optional)."`
	Important bool   `help:"Mark the entry as important."`
	Content   string `help:"Entry content. Prompted for when omitted." arg:"" optional:""`
}

func (c *EntryAddCmd) Run(ctx *cli.Context) error {
	session, err := ctx.Authenticate(c.User)
	if err != nil {
		return err
	}

	content := c.Content
	if content == "" {
		prompt := huh.NewText().Title("What happened today?").Value(&content)
		if err := prompt.Run(); err != nil {
			return err
		}
	}

	entry := models.Entry{
		ID:        uuid.NewString(),
		UserID:    session.UserID,
		CreatedAt: time.Now(),
		Title:     c.Title,
		Content:   content,
		Mood:      c.Mood,
		Important: c.Important,
	}

	if err := ctx.Store.AddEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Saved entry %s.\n", entry.ID)
	return nil
}
