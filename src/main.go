// Package src contains the Main function of Mosaic. It parses the command line,
// reads the configuration and runs the selected command.
//
// At the moment it is in package src because it is imported from the project's
// root folder.
package src

import (
	"context"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/ironsmile/mosaic/src/version"
)

// Main is the only thing run in the project's root main.go file. For all
// intent and purposes this is the main function. sqlFiles is the file system
// with the database migrations.
func Main(sqlFiles fs.FS) {
	runner := NewRunner(RunnerOpts{
		SQLFiles: sqlFiles,
		Output:   os.Stdout,
	})

	if err := runner.App().Run(context.Background(), os.Args); err != nil {
		log.Fatalf("mosaic: %s", err)
	}
}

// App returns the root command of the command line interface.
func (r *Runner) App() *cli.Command {
	return &cli.Command{
		Name:    "mosaic",
		Usage:   "Compose cover art for music playlists",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a configuration file merged over the user's one",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log debug messages",
			},
		},
		Commands: r.register(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, composeCommand, playlistCommand, versionCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API which serves playlists and their art",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "Address to listen on. Overrides the configuration",
			},
		},
		Action: r.Serve,
	}
}

func composeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "compose",
		Usage:     "Compose the art of a stored playlist into an image file",
		ArgsUsage: "<playlist-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Output image file path",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Image format: jpeg or png. Defaults to the configured one",
			},
			&cli.BoolFlag{
				Name:  "placeholders",
				Usage: "Use placeholder tiles for songs without art",
			},
		},
		Action: r.Compose,
	}
}

func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlist",
		Usage: "Manage stored playlists",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Create a playlist out of song files",
				ArgsUsage: "<song-file>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Name of the new playlist",
						Required: true,
					},
				},
				Action: r.PlaylistAdd,
			},
			{
				Name:  "list",
				Usage: "List stored playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PlaylistList,
			},
		},
	}
}

func versionCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Print version information",
		Action: r.Version,
	}
}
