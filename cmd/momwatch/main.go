package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/spektr-org/momwatch/config"
	"github.com/spektr-org/momwatch/dashboard"
	"github.com/spektr-org/momwatch/dataset"
	"github.com/spektr-org/momwatch/engine"
	"github.com/spektr-org/momwatch/loader"
	"github.com/spektr-org/momwatch/render"
	"github.com/spektr-org/momwatch/server"
)

// ============================================================================
// MOMWATCH CLI - Maternal & fetal health dashboard
// ============================================================================

const version = "0.3.0"

var (
	app = kingpin.New("momwatch", "Maternal and fetal health analytics dashboard.")
	cfg config.Config

	serveCmd = app.Command("serve", "Serve the web dashboard.")

	reportCmd     = app.Command("report", "Run one dashboard cycle and print it.")
	reportDataset = reportCmd.Flag("dataset", "Dataset file name.").Default(string(dataset.Default())).Enum(datasetNames()...)
	reportPredict = reportCmd.Flag("predict", "Press the Predict Now button.").Bool()
	reportValue1  = reportCmd.Flag("value-1", "Systolic BP / Baseline Value.").Default(fmt.Sprint(engine.Value1Field.Default)).Int()
	reportValue2  = reportCmd.Flag("value-2", "Blood Sugar / Fetal Movement.").Default(fmt.Sprint(engine.Value2Field.Default)).Int()
	reportValue3  = reportCmd.Flag("value-3", "Body Temp / Acceleration.").Default(fmt.Sprint(engine.Value3Field.Default)).Int()
	reportRows    = reportCmd.Flag("rows", "Raw preview rows.").Default(fmt.Sprint(engine.DefaultPreviewRows)).Int()
	reportFormat  = reportCmd.Flag("format", "Output format: text, json, pretty, csv.").Default("text").Enum(render.Formats()...)
	reportOut     = reportCmd.Flag("out", "Write output to file instead of stdout.").String()

	discoverCmd     = app.Command("discover", "Print the discovered columns of a dataset.")
	discoverDataset = discoverCmd.Flag("dataset", "Dataset file name.").Default(string(dataset.Default())).Enum(datasetNames()...)
	discoverFormat  = discoverCmd.Flag("format", "Output format: text, json, pretty, csv.").Default("text").Enum(render.Formats()...)

	datasetsCmd = app.Command("datasets", "List the selectable datasets.")
)

func main() {
	app.Version(version)
	app.HelpFlag.Short('h')
	cfg.RegisterGlobal(app)
	cfg.RegisterServer(serveCmd)

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	check(config.InitLogger(cfg.Log, os.Stderr))
	check(cfg.Validate())

	switch cmd {
	case serveCmd.FullCommand():
		check(serve())
	case reportCmd.FullCommand():
		check(report())
	case discoverCmd.FullCommand():
		check(discover())
	case datasetsCmd.FullCommand():
		listDatasets(os.Stdout)
	}
}

// ── serve ────────────────────────────────────────────────────────────────────

func serve() error {
	gin.SetMode(cfg.Server.Mode)
	l := loader.NewFromDir(cfg.Data.Dir)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.New(l).Router(cfg.Server),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"addr":     cfg.Server.Addr,
			"data_dir": cfg.Data.Dir,
			"gin_mode": cfg.Server.Mode,
		}).Info("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- errors.Wrap(err, "HTTP server failed")
		}
		close(errc)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server forced to shutdown")
	}
	log.Info("server gracefully stopped")
	return nil
}

// ── report ───────────────────────────────────────────────────────────────────

func report() error {
	id, err := dataset.Parse(*reportDataset)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(*reportFormat)
	if err != nil {
		return err
	}

	w, closeOut, err := output(*reportOut)
	if err != nil {
		return err
	}
	defer closeOut()

	page := dashboard.New(loader.NewFromDir(cfg.Data.Dir)).Run(dashboard.Request{
		Dataset: id,
		Inputs: engine.PredictorInputs{
			Value1: *reportValue1,
			Value2: *reportValue2,
			Value3: *reportValue3,
		},
		Trigger:     *reportPredict,
		PreviewRows: *reportRows,
	})
	if err := render.Report(w, page, format); err != nil {
		return err
	}
	if page.Failed() {
		return errors.New(page.Error)
	}
	return nil
}

// ── discover ─────────────────────────────────────────────────────────────────

func discover() error {
	id, err := dataset.Parse(*discoverDataset)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(*discoverFormat)
	if err != nil {
		return err
	}
	sch, err := loader.NewFromDir(cfg.Data.Dir).Schema(id)
	if err != nil {
		return err
	}
	return render.Schema(os.Stdout, sch, format)
}

// ── datasets ─────────────────────────────────────────────────────────────────

func listDatasets(w io.Writer) {
	for _, c := range dashboard.Choices(dataset.Default()) {
		marker := " "
		if c.Default {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-40s %s\n", marker, c.ID, c.Label)
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func datasetNames() []string {
	ids := dataset.All()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// output opens path for writing, or returns stdout when path is empty.
func output(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create output file %s", path)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("closing output file failed")
		}
	}, nil
}

// check logs err with its stack at debug level and exits.
func check(err error) {
	if err != nil {
		log.Debugf("%+v", err)
		log.Fatalf("%v", err)
	}
}
