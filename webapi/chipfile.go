package webapi

import (
	"context"
	"strings"

	"go-raceresult/model"
)

// ChipFileEndpoint manages the transponder-to-identification mapping. The
// wire format is plain text, one "transponder;identification" pair per CRLF
// line.
type ChipFileEndpoint struct {
	event *EventApi
}

// Get returns all chip file entries.
func (c *ChipFileEndpoint) Get(ctx context.Context) ([]model.ChipFileEntry, error) {
	body, err := c.event.get(ctx, "chipfile/get", nil)
	if err != nil {
		return nil, err
	}
	var entries []model.ChipFileEntry
	for _, line := range strings.Split(string(body), "\r\n") {
		transponder, identification, ok := strings.Cut(line, ";")
		if !ok {
			continue
		}
		entries = append(entries, model.ChipFileEntry{
			Transponder:    transponder,
			Identification: identification,
		})
	}
	return entries, nil
}

// Save replaces the chip file with the given entries.
func (c *ChipFileEndpoint) Save(ctx context.Context, entries []model.ChipFileEntry) error {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Transponder + ";" + e.Identification
	}
	_, err := c.event.post(ctx, "chipfile/save", nil, strings.Join(lines, "\r\n"), "text/plain")
	return err
}

// Clear removes all chip file entries.
func (c *ChipFileEndpoint) Clear(ctx context.Context) error {
	_, err := c.event.get(ctx, "chipfile/clear", nil)
	return err
}
