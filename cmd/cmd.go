// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// outputFlags are shared by the lookup commands.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
			Value: true,
		},
	}
}

// setupCommand initializes the database and scaffolds configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database, run migrations, and scaffold config",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// artistCommand looks up an artist by id.
func artistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artist",
		Usage: "Look up an artist, serving from the local cache when possible",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: append(outputFlags(),
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the artist's page in the browser",
			},
		),
		Action: r.Artist,
	}
}

// trackCommand looks up a track by id.
func trackCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "track",
		Usage: "Look up a track and its artists",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: append(outputFlags(),
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the track's page in the browser",
			},
		),
		Action: r.Track,
	}
}

// playlistCommand looks up a playlist by id.
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlist",
		Usage: "Look up a playlist with its tracks",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: append(outputFlags(),
			&cli.BoolFlag{
				Name:  "chart",
				Usage: "Render a track popularity chart",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "Export format: csv, md, or txt",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Base path for exported files",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the playlist's page in the browser",
			},
		),
		Action: r.Playlist,
	}
}

// relatedCommand looks up the artists related to an artist.
func relatedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "related",
		Usage: "List artists related to an artist",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags: append(outputFlags(),
			&cli.BoolFlag{
				Name:  "chart",
				Usage: "Render a follower count chart",
			},
		),
		Action: r.Related,
	}
}

// featuredCommand shows the featured playlist snapshot.
func featuredCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "featured",
		Usage:  "Show the cached featured playlists, capturing a snapshot when none exists",
		Flags:  outputFlags(),
		Action: r.Featured,
	}
}

// postsCommand searches social posts about a track.
func postsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "posts",
		Usage: "Show social posts mentioning a track",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "id"},
		},
		Flags:  outputFlags(),
		Action: r.Posts,
	}
}

// searchCommand runs a keyword search against the catalog.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog by keyword (results are not cached)",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "query"},
		},
		Flags: append(outputFlags(),
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "What to search for: artist, track, or playlist",
				Value:   "track",
			},
		),
		Action: r.Search,
	}
}

// menuCommand returns the top-level TUI command for interactive exploration.
func menuCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "menu",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive exploration menu",
		Action:  r.Menu,
	}
}
