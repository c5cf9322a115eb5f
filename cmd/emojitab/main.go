package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nodakmesh/emojitab"
	"github.com/nodakmesh/emojitab/cache"
	"github.com/urfave/cli/v2"
)

const defaultCache = ".emoji_cache"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	_ = godotenv.Load()

	app := cli.NewApp()

	app.Name = "emojitab"
	app.Usage = "Generate the firmware emoji bitmap table from Twemoji"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "cache",
			EnvVars: []string{"EMOJITAB_CACHE"},
			Value:   defaultCache,
			Usage:   "path to the image cache directory",
		},
		&cli.StringFlag{
			Name:    "base-url",
			EnvVars: []string{"EMOJITAB_BASE_URL"},
			Value:   emojitab.DefaultBaseURL,
			Usage:   "remote image source",
		},
		&cli.DurationFlag{
			Name:    "timeout",
			EnvVars: []string{"EMOJITAB_TIMEOUT"},
			Value:   emojitab.DefaultTimeout,
			Usage:   "per-download timeout",
		},
		&cli.DurationFlag{
			Name:    "delay",
			EnvVars: []string{"EMOJITAB_DELAY"},
			Value:   emojitab.DefaultDelay,
			Usage:   "pause between consecutive downloads",
		},
		&cli.BoolFlag{
			Name:    "insecure",
			EnvVars: []string{"EMOJITAB_INSECURE"},
			Usage:   "skip TLS certificate verification (not recommended)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "report per-emoji progress on stderr",
		},
	}

	// The table is written to stdout for redirection into the build;
	// diagnostics stay on stderr.
	app.Action = func(c *cli.Context) error {
		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		set, err := emojitab.DefaultSet()
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		dir, err := cache.New(c.String("cache"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		fetcher := emojitab.NewFetcher(dir, emojitab.FetcherConfig{
			BaseURL:  c.String("base-url"),
			Timeout:  c.Duration("timeout"),
			Delay:    c.Duration("delay"),
			Insecure: c.Bool("insecure"),
		})

		stats, err := emojitab.New(set, fetcher, logger).Generate(os.Stdout)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		fmt.Fprintf(os.Stderr, "Done! Success: %d, Failed: %d\n", stats.Success, stats.Placeholder)

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
