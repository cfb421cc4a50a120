package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/cratedig/cratedig/internal/formatter"
	"github.com/cratedig/cratedig/internal/shared"
	"github.com/urfave/cli/v3"
)

// Artist looks up an artist through the explorer.
func (r *Runner) Artist(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	e, err := r.ensureExplorer()
	if err != nil {
		return err
	}

	artist, err := e.GetArtist(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(artist, cmd.Bool("pretty"))
	}

	r.writePlain("%s", artist.String())

	if cmd.Bool("open") && artist.ExternalURL != "" {
		if err := shared.OpenBrowser(artist.ExternalURL); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	return nil
}

// Track looks up a track through the explorer.
func (r *Runner) Track(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	e, err := r.ensureExplorer()
	if err != nil {
		return err
	}

	track, err := e.GetTrack(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(track, cmd.Bool("pretty"))
	}

	r.writePlain("%s", track.String())

	if cmd.Bool("open") && track.ExternalURL != "" {
		if err := shared.OpenBrowser(track.ExternalURL); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	return nil
}

// Playlist looks up a playlist through the explorer, with optional
// chart rendering and file export.
func (r *Runner) Playlist(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: playlist id", shared.ErrMissingArgument)
	}

	e, err := r.ensureExplorer()
	if err != nil {
		return err
	}

	playlist, err := e.GetPlaylist(ctx, id)
	if err != nil {
		return err
	}

	if format := cmd.String("export"); format != "" {
		base := cmd.String("output")
		switch format {
		case "csv":
			files, err := formatter.WriteCSVExport(playlist, base)
			if err != nil {
				return err
			}
			for _, f := range files {
				r.writePlain("wrote %s\n", f)
			}
		case "md", "markdown":
			file, err := formatter.WriteMarkdownExport(playlist, base)
			if err != nil {
				return err
			}
			r.writePlain("wrote %s\n", file)
		case "txt", "text":
			file, err := formatter.WriteTextExport(playlist, base)
			if err != nil {
				return err
			}
			r.writePlain("wrote %s\n", file)
		default:
			return fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, format)
		}
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlist, cmd.Bool("pretty"))
	}

	r.writePlain("%s", playlist.String())

	if cmd.Bool("chart") && len(playlist.Tracks) > 0 {
		r.writePlain("\n%s", formatter.PopularityChart(playlist.Tracks))
	}

	if cmd.Bool("open") && playlist.ExternalURL != "" {
		if err := shared.OpenBrowser(playlist.ExternalURL); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	return nil
}

// Related lists the artists related to an artist.
func (r *Runner) Related(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	e, err := r.ensureExplorer()
	if err != nil {
		return err
	}

	artists, err := e.GetRelatedArtists(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(artists, cmd.Bool("pretty"))
	}

	if len(artists) == 0 {
		r.writePlain("No related artists.\n")
		return nil
	}

	if cmd.Bool("chart") {
		r.writePlain("%s", formatter.FollowerChart(artists))
		return nil
	}

	for i, artist := range artists {
		r.writePlain("%d. %s (%s)\n", i+1, artist.Name, artist.Genres)
	}

	return nil
}

// Featured shows the cached featured playlists.
func (r *Runner) Featured(ctx context.Context, cmd *cli.Command) error {
	e, err := r.ensureExplorer()
	if err != nil {
		return err
	}

	playlists, err := e.GetFeaturedPlaylists(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		r.writePlain("No featured playlists.\n")
		return nil
	}

	r.writePlainHeader("Featured playlists")
	for i, playlist := range playlists {
		r.writePlain("%d. %s (%s, %d tracks)\n", i+1, playlist.Name, playlist.Owner, len(playlist.Tracks))
	}

	return nil
}

// Posts shows the social posts cached for a track.
func (r *Runner) Posts(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	if r.social == nil {
		return fmt.Errorf("%w: social service not configured (set credentials.twitter in config.toml)", shared.ErrMissingCredentials)
	}

	e, err := r.ensureExplorer()
	if err != nil {
		return err
	}

	posts, err := e.GetPostsByTrack(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(posts, cmd.Bool("pretty"))
	}

	if len(posts) == 0 {
		r.writePlain("No posts found.\n")
		return nil
	}

	for _, post := range posts {
		r.writePlain("%s\n", post.String())
	}

	return nil
}

// Search runs a keyword search against the catalog.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	e, err := r.ensureExplorer()
	if err != nil {
		return err
	}

	kind := strings.ToLower(cmd.String("kind"))
	results, err := e.Search(ctx, query, kind)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, cmd.Bool("pretty"))
	}

	if len(results) == 0 {
		r.writePlain("No results.\n")
		return nil
	}

	for _, result := range results {
		if result.Detail != "" {
			r.writePlain("%s  %s (%s)\n", result.ID, result.Name, result.Detail)
		} else {
			r.writePlain("%s  %s\n", result.ID, result.Name)
		}
	}

	return nil
}
