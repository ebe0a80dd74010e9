package app

import (
	"context"
	"errors"

	"go.trai.ch/rehost/internal/core/domain"
	"go.trai.ch/zerr"
)

// ListOptions configuration for the List method.
type ListOptions struct {
	File         string
	SettingsPath string
}

// ListEntry is one directive as found in the document.
type ListEntry struct {
	// Line is the 1-based line number of the HostName line.
	Line    int
	Host    string
	Command string
}

// ListGroup is a directive name with its entries in document order.
type ListGroup struct {
	Name    string
	Entries []ListEntry
}

// Listing is the parse-only view of an SSH config.
type Listing struct {
	Path    string
	Found   bool
	Groups  []ListGroup
	Orphans []domain.Orphan
}

// List parses the SSH config and describes its directives. It never runs
// commands or writes.
func (a *App) List(_ context.Context, opts ListOptions) (*Listing, error) {
	settings, err := a.configure(opts.SettingsPath, domain.Settings{SSHConfig: opts.File})
	if err != nil {
		return nil, err
	}

	listing := &Listing{Path: settings.SSHConfig}
	text, err := a.store.Read(settings.SSHConfig)
	if err != nil {
		if errors.Is(err, domain.ErrConfigNotFound) {
			a.logger.Warn("config file not found: " + settings.SSHConfig)
			return listing, nil
		}
		return nil, zerr.Wrap(err, "failed to load ssh config")
	}
	listing.Found = true

	doc := domain.NewDocument(text)
	parsed := domain.ParseTasks(doc.Lines)
	listing.Orphans = parsed.Orphans

	groups := domain.GroupByName(parsed.Tasks)
	for _, name := range groups.Names() {
		group := ListGroup{Name: name}
		for _, task := range groups[name] {
			host, _ := domain.HostValue(doc.Lines[task.TargetLine])
			group.Entries = append(group.Entries, ListEntry{
				Line:    task.TargetLine + 1,
				Host:    host,
				Command: task.Command,
			})
		}
		listing.Groups = append(listing.Groups, group)
	}
	return listing, nil
}
