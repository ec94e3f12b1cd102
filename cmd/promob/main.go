package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"promob/internal"
	"promob/internal/config"
	"promob/internal/pipeline"
	"promob/internal/util"
)

func main() {
	cfg, err := config.Load()
	must(err)
	setupLogging(cfg)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input file path")
		inType := fs.String("type", "auto", "auto|text|html|pdf|eml|xlsx")
		asJSON := fs.Bool("json", false, "emit the structured analysis instead of the report")
		dobradica := fs.String("dobradica", "", "comma-separated hinge list for the report")
		corredica := fs.String("corredica", "", "comma-separated slide list for the report")
		out := fs.String("out", "", "output file (default stdout)")
		// Positional form: run FILE [dobradica-list] [corredica-list]
		args := parseInterspersed(fs, os.Args[2:])
		if *input == "" && len(args) > 0 {
			*input, args = args[0], args[1:]
		}
		if *dobradica == "" && len(args) > 0 {
			*dobradica, args = args[0], args[1:]
		}
		if *corredica == "" && len(args) > 0 {
			*corredica = args[0]
		}
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}

		res := parseInput(cfg, *input, *inType)
		var blob []byte
		if *asJSON {
			blob, err = pipeline.Analyze(res).JSON()
			must(err)
		} else {
			report := pipeline.Render(res, overrides(cfg, *dobradica, *corredica))
			text := report.Text()
			if unknown := pipeline.FormatUnknown(res.Unknown); unknown != "" {
				text += "\n\n\n" + unknown
			}
			blob = []byte(text)
		}
		must(writeOutput(*out, append(blob, '\n')))
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input file path")
		inType := fs.String("type", "auto", "auto|text|html|pdf|eml|xlsx")
		dobradica := fs.String("dobradica", "", "comma-separated hinge list for the report")
		corredica := fs.String("corredica", "", "comma-separated slide list for the report")
		out := fs.String("out", "", "output xlsx path (default OUTPUT_DIR/<input>.xlsx)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		if strings.TrimSpace(*out) == "" {
			base := strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))
			*out = filepath.Join(cfg.OutputDir, util.SanitizeFileName(base)+".xlsx")
		}

		res := parseInput(cfg, *input, *inType)
		report := pipeline.Render(res, overrides(cfg, *dobradica, *corredica))
		must(pipeline.ExportReportToXLSX(report, res.Unknown, *out))
		log.Infof("Exported %d sections and %d unknown items to %s", len(report.Sections), len(res.Unknown), *out)
	case "detect":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "input file path")
		inType := fs.String("type", "auto", "auto|text|html|pdf|eml|xlsx")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		text, err := pipeline.ReadInput(*input, internal.InputKind(*inType))
		must(err)
		d := pipeline.DetectSpecText(text)
		fmt.Printf("is_spec=%t score=%.2f reason=%s\n", d.IsSpec, d.Score, d.Reason)
	default:
		usage()
		os.Exit(1)
	}
}

func parseInput(cfg config.Config, path, inType string) *pipeline.Result {
	text, err := pipeline.ReadInput(path, internal.InputKind(inType))
	must(err)

	if cfg.WarnNotSpec {
		if d := pipeline.DetectSpecText(text); !d.IsSpec {
			log.Warnf("Input %s does not look like a project export (score %.2f)", path, d.Score)
		}
	}

	res := pipeline.Parse(text)
	log.WithFields(log.Fields{
		"records":    res.Records,
		"unknown":    len(res.Unknown),
		"categories": len(res.Store.Categories()),
	}).Debug("Parsed input")
	return res
}

// overrides falls back to the configured defaults for any list not given.
func overrides(cfg config.Config, dobradica, corredica string) pipeline.Overrides {
	ov := pipeline.Overrides{Dobradica: cfg.DefaultDobradica, Corredica: cfg.DefaultCorredica}
	if list := util.SplitList(dobradica); len(list) > 0 {
		ov.Dobradica = list
	}
	if list := util.SplitList(corredica); len(list) > 0 {
		ov.Corredica = list
	}
	return ov
}

func writeOutput(path string, blob []byte) error {
	if strings.TrimSpace(path) == "" {
		_, err := os.Stdout.Write(blob)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, blob, 0o644)
}

func setupLogging(cfg config.Config) {
	log.SetOutput(os.Stderr)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func usage() {
	fmt.Println("usage: promob <command>")
	fmt.Println("commands:")
	fmt.Println("  run --input=FILE [--type=auto|text|html|pdf|eml|xlsx] [--json] [--dobradica=a,b] [--corredica=c] [--out=FILE]")
	fmt.Println("  run FILE [dobradica-list] [corredica-list]")
	fmt.Println("  export:xlsx --input=FILE [--out=FILE.xlsx] [--dobradica=a,b] [--corredica=c]")
	fmt.Println("  detect --input=FILE")
}

// parseInterspersed parses flags found anywhere in args and returns the
// positional arguments in order.
func parseInterspersed(fs *flag.FlagSet, args []string) []string {
	positional := []string{}
	for {
		_ = fs.Parse(args)
		args = fs.Args()
		if len(args) == 0 {
			return positional
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
