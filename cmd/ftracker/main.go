package main

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/gorilla/sessions"
	echoprometheus "github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/bzimmer/ftracker"
)

func config(c *cli.Context) (*ftracker.Config, error) {
	var fp fs.File
	var err error
	switch c.IsSet("config") {
	case true:
		log.Info().Str("file", c.String("config")).Msg("config")
		fp, err = os.Open(c.String("config"))
	case false:
		log.Info().Str("file", "etc/packages.json").Msg("config")
		fp, err = ftracker.Content.Open("etc/packages.json")
	}
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ftracker.NewConfig(fp)
}

func report(c *cli.Context) error {
	cfg, err := config(c)
	if err != nil {
		return err
	}
	reporter := ftracker.NewReporter(c.Int("concurrency"))
	msgs, err := reporter.Reports(c.Context, cfg.Packages)
	if err != nil {
		return err
	}
	for _, msg := range msgs {
		if _, err := fmt.Fprintln(c.App.Writer, msg); err != nil {
			return err
		}
	}
	return nil
}

const defaultPort = "9001"

// address is the listen address for the base url, falling back to the default port
func address(u *url.URL) string {
	port := u.Port()
	if port == "" {
		port = defaultPort
	}
	return net.JoinHostPort("0.0.0.0", port)
}

// mode selects between serving locally and running as a function
func mode(c *cli.Context) string {
	if c.Bool("netlify") {
		return "function"
	}
	return "serve"
}

func newEngine(c *cli.Context, u *url.URL) *echo.Echo {
	store := sessions.NewCookieStore([]byte(c.String("session-key")))

	engine := echo.New()
	engine.HideBanner = true
	engine.Use(middleware.Recover())
	engine.Use(session.Middleware(store))
	echoprometheus.NewPrometheus("ftracker", nil).Use(engine)

	base := engine.Group(u.Path)
	base.POST("/report", ftracker.ReportHandler())
	base.GET("/history", ftracker.HistoryHandler())

	return engine
}

func serve(c *cli.Context, u *url.URL) error {
	engine := newEngine(c, u)
	addr := address(u)
	log.Info().Str("address", addr).Msg("serving")
	return http.ListenAndServe(addr, engine)
}

func function(c *cli.Context, u *url.URL) error {
	engine := newEngine(c, u)
	log.Info().Msg("running function")
	lambda.Start(ftracker.LambdaHandler(echoadapter.New(engine)))
	return nil
}

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "session-key",
			Required: true,
			Usage:    "session keypair",
			EnvVars:  []string{"FTRACKER_SESSION_KEY"},
		},
		&cli.StringFlag{
			Name:    "base-url",
			Value:   "http://localhost:" + defaultPort,
			Usage:   "Base URL",
			EnvVars: []string{"BASE_URL"},
		},
		&cli.BoolFlag{
			Name:    "netlify",
			Value:   false,
			Usage:   "run as a netlify function",
			EnvVars: []string{"NETLIFY"},
		},
	}
}

func start(c *cli.Context) error {
	u, err := url.Parse(c.String("base-url"))
	if err != nil {
		return err
	}
	if mode(c) == "function" {
		return function(c, u)
	}
	return serve(c, u)
}

func main() {
	app := &cli.App{
		Name:     "ftracker",
		HelpName: "ftracker",
		Usage:    "Workout summaries from sensor data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "file with sensor packages",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: 4,
				Usage: "number of packages to report concurrently",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Value: false,
				Usage: "enable debug logging",
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			log.Logger = log.Output(
				zerolog.ConsoleWriter{
					Out:        c.App.ErrWriter,
					NoColor:    false,
					TimeFormat: time.RFC3339,
				},
			)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "Print a summary for each sensor package",
				Action: report,
			},
			{
				Name:   "serve",
				Usage:  "Serve workout summaries over http",
				Flags:  serveFlags(),
				Action: start,
			},
		},
		Action: report,
	}
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
