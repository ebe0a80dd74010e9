package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/rehost/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	var opts app.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the directives found in the SSH config",
		Long:  "List parses the SSH config and prints every directive group. It never runs commands or writes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.SettingsPath = c.settingsPath
			listing, err := c.app.List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return RenderListing(cmd.OutOrStdout(), listing)
		},
	}
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "SSH config file to read (default ~/.ssh/config)")
	return cmd
}

// RenderListing writes listing as an aligned table grouped by directive name.
func RenderListing(w io.Writer, listing *app.Listing) error {
	if !listing.Found {
		return nil
	}
	if len(listing.Groups) == 0 && len(listing.Orphans) == 0 {
		_, err := fmt.Fprintf(w, "no directives in %s\n", listing.Path)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, group := range listing.Groups {
		_, _ = fmt.Fprintf(tw, "%s\n", group.Name)
		for _, e := range group.Entries {
			_, _ = fmt.Fprintf(tw, "  line %d\t%s\t%s\n", e.Line, e.Host, e.Command)
		}
	}
	for _, o := range listing.Orphans {
		_, _ = fmt.Fprintf(tw, "! %s\tline %d\tno HostName line below\n", o.Name, o.Line+1)
	}
	return tw.Flush()
}
